package dynamo

// DynamoDB attribute names shared across repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUpdatedAt = "updated_at"
)
