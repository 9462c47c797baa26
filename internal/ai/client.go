package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/accessihire/backend/internal/models"
	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/accessihire/backend/pkg/logger"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ResumeData is the structured output of a generation call. Field shapes
// match the resume section columns one to one.
type ResumeData struct {
	PersonalInfo   models.PersonalInfo      `json:"personalInfo"`
	Experience     []models.ExperienceEntry `json:"experience"`
	Education      []models.EducationEntry  `json:"education"`
	Skills         models.SkillSet          `json:"skills"`
	Projects       []models.Project         `json:"projects"`
	Certifications []models.Certification   `json:"certifications"`
}

// Client turns a free-text prompt into structured resume data by calling the
// Gemini generateContent endpoint and recovering a JSON object from the text
// reply. One outbound call per invocation, no retries.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given credential and model. An empty
// apiKey is allowed at construction time; Generate reports the service as
// unavailable until one is configured.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *upstreamError `json:"error,omitempty"`
}

type upstreamError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Generate sends the instruction template embedding the user prompt and
// recovers structured resume data from the completion text. Malformed model
// output degrades to the fallback shape rather than failing.
func (c *Client) Generate(ctx context.Context, prompt string) (*ResumeData, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Prompt is required for AI generation")
	}
	if c.apiKey == "" {
		return nil, appErr.New(appErr.CodeUnavailable, "AI service is not configured. Please contact administrator.")
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(prompt)}}}},
	})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "serialize generation request failed")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "build generation request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "AI request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "read AI response failed")
	}
	if len(raw) == 0 {
		return nil, appErr.New(appErr.CodeUpstream, "AI service returned an empty response")
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "decode AI response failed")
	}
	if decoded.Error != nil {
		return nil, appErr.New(appErr.CodeUpstream,
			fmt.Sprintf("AI service error (%d): %s", decoded.Error.Code, decoded.Error.Message))
	}

	text := completionText(&decoded)
	if text == "" {
		return nil, appErr.New(appErr.CodeUpstream, "AI service returned no completion")
	}

	logger.L().Debug("ai completion received", zap.Int("chars", len(text)))
	return ParseCompletion(text), nil
}

func completionText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func buildPrompt(userPrompt string) string {
	return `You are a professional resume writer. Generate structured resume data in JSON format.

Create a professional resume based on the following information.
Make it professional, concise, and tailored for job applications.
Focus on achievements and measurable results.

User input: ` + userPrompt + `

Please create a professional resume with the following structure:
{
  "personalInfo": {
    "fullName": "string (required)",
    "email": "string (required)",
    "phone": "string",
    "summary": "string"
  },
  "experience": [
    {
      "company": "string (required)",
      "position": "string (required)",
      "startDate": "YYYY-MM-DD (required)",
      "endDate": "YYYY-MM-DD or null",
      "current": false,
      "description": "string"
    }
  ],
  "education": [
    {
      "institution": "string (required)",
      "degree": "string (required)",
      "field": "string",
      "startDate": "YYYY-MM-DD (required)",
      "endDate": "YYYY-MM-DD or null"
    }
  ],
  "skills": {
    "technical": ["string"],
    "soft": ["string"],
    "languages": ["string"]
  },
  "projects": [
    {
      "name": "string (required)",
      "description": "string",
      "technologies": ["string"]
    }
  ],
  "certifications": [
    {
      "name": "string",
      "issuer": "string",
      "date": "string"
    }
  ]
}

IMPORTANT: Return ONLY valid JSON. Do not include markdown code blocks, explanations, or any text outside the JSON object.`
}
