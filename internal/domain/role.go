package domain

// RoleAdmin is the only privileged role; the back-office has a single operator.
const RoleAdmin = "admin"
