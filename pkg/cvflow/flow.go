// Package cvflow drives the visitor-facing resume download flow against the
// API: submit name and email, confirm the emailed one-time code, then save
// the PDF. It tracks which step the visitor is on so a UI can render the
// right screen.
package cvflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Step is the screen the visitor currently sees.
type Step string

const (
	StepForm    Step = "form"
	StepOTP     Step = "otp"
	StepSuccess Step = "success"
)

// CodeLength is how many digits the one-time code has.
const CodeLength = 6

// Flow is a stateful client for the resume download endpoints.
// It is not safe for concurrent use.
type Flow struct {
	baseURL string
	client  *http.Client

	step  Step
	name  string
	email string
	cv    []byte
}

// New returns a Flow starting at the form step. baseURL is the API root,
// e.g. "https://api.example.com".
func New(baseURL string) *Flow {
	return &Flow{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		step:    StepForm,
	}
}

// Step reports the current step.
func (f *Flow) Step() Step { return f.step }

// Email reports the email the flow is bound to, empty on the form step.
func (f *Flow) Email() string { return f.email }

// CV returns the downloaded PDF bytes, nil before the success step.
func (f *Flow) CV() []byte { return f.cv }

type requestOTPResponse struct {
	Message         string `json:"message"`
	AlreadyVerified bool   `json:"alreadyVerified"`
	Email           string `json:"email"`
	Error           string `json:"error"`
}

// Submit sends the visitor's name and email. Already-verified visitors skip
// straight to the success step with the PDF in hand; everyone else advances
// to the OTP step. On error the flow stays on the form step.
func (f *Flow) Submit(ctx context.Context, name, email string) error {
	if f.step != StepForm {
		return fmt.Errorf("submit only allowed on the form step, currently on %q", f.step)
	}
	var resp requestOTPResponse
	if err := f.postJSON(ctx, "/v1/cv-access/request-otp",
		map[string]string{"name": name, "email": email}, &resp); err != nil {
		return err
	}
	f.name = name
	f.email = email
	if resp.AlreadyVerified {
		return f.fetchCV(ctx)
	}
	f.step = StepOTP
	return nil
}

// EnterOTP submits the code the visitor typed. Non-digits are stripped and
// input beyond the code length ignored, so pasting "123-456" or "1234567"
// still works. A wrong or expired code keeps the flow on the OTP step.
func (f *Flow) EnterOTP(ctx context.Context, code string) error {
	if f.step != StepOTP {
		return fmt.Errorf("code entry only allowed on the otp step, currently on %q", f.step)
	}
	code = sanitizeCode(code)
	if len(code) != CodeLength {
		return fmt.Errorf("code must be %d digits", CodeLength)
	}
	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := f.postJSON(ctx, "/v1/cv-access/verify-otp",
		map[string]string{"email": f.email, "otp": code}, &resp); err != nil {
		return err
	}
	return f.fetchCV(ctx)
}

// Resend asks for a fresh code using the name and email from Submit.
func (f *Flow) Resend(ctx context.Context) error {
	if f.step != StepOTP {
		return fmt.Errorf("resend only allowed on the otp step, currently on %q", f.step)
	}
	var resp requestOTPResponse
	return f.postJSON(ctx, "/v1/cv-access/request-otp",
		map[string]string{"name": f.name, "email": f.email}, &resp)
}

// ChangeEmail returns to the form step so the visitor can start over with a
// different address.
func (f *Flow) ChangeEmail() {
	f.step = StepForm
	f.email = ""
	f.cv = nil
}

// Download re-fetches the PDF on the success step, bumping the download
// counter server-side.
func (f *Flow) Download(ctx context.Context) ([]byte, error) {
	if f.step != StepSuccess {
		return nil, fmt.Errorf("download only allowed on the success step, currently on %q", f.step)
	}
	if err := f.fetchCV(ctx); err != nil {
		return nil, err
	}
	return f.cv, nil
}

// Close resets the flow to the form step and drops all held state.
func (f *Flow) Close() {
	f.step = StepForm
	f.name = ""
	f.email = ""
	f.cv = nil
}

func (f *Flow) fetchCV(ctx context.Context) error {
	u := f.baseURL + "/v1/cv-access/file?email=" + url.QueryEscape(f.email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching cv: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading cv body: %w", err)
	}
	f.cv = data
	f.step = StepSuccess
	return nil
}

func (f *Flow) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, envelope.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}

func sanitizeCode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == CodeLength {
				break
			}
		}
	}
	return b.String()
}
