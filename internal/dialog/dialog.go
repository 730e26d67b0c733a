// Package dialog wraps the Dialogflow ES sessions API behind the small
// surface the chat endpoint needs.
package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"
)

// credentialPaths are checked in order when looking for the service account
// key file.
var credentialPaths = []string{
	"service_account.json",
	"../service_account.json",
}

// FindServiceAccount returns the first readable credential file, or an empty
// string when none exists. The chat endpoint is optional, so a missing file
// is not an error.
func FindServiceAccount() string {
	for _, path := range credentialPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Reply is the distilled detect-intent result returned to the caller.
type Reply struct {
	FulfillmentText string
	Intent          string
	Confidence      float32
}

// Client holds a Dialogflow sessions client bound to one agent project.
type Client struct {
	sessions  *dialogflow.SessionsClient
	projectID string
}

// NewClient reads the service account key at path, extracts the project id
// and opens a sessions client authenticated with that key.
func NewClient(ctx context.Context, path string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service account key: %w", err)
	}
	var key struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	if key.ProjectID == "" {
		return nil, fmt.Errorf("service account key %s has no project_id", path)
	}
	sessions, err := dialogflow.NewSessionsClient(ctx, option.WithCredentialsJSON(data))
	if err != nil {
		return nil, fmt.Errorf("create sessions client: %w", err)
	}
	return &Client{sessions: sessions, projectID: key.ProjectID}, nil
}

// DetectIntent sends one user utterance to the agent under the given session
// and returns the matched intent with its fulfillment text.
func (c *Client) DetectIntent(ctx context.Context, sessionID, text string) (*Reply, error) {
	req := &dialogflowpb.DetectIntentRequest{
		Session: fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         text,
					LanguageCode: "en-US",
				},
			},
		},
	}
	resp, err := c.sessions.DetectIntent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("detect intent: %w", err)
	}
	result := resp.GetQueryResult()
	reply := &Reply{
		FulfillmentText: result.GetFulfillmentText(),
		Confidence:      result.GetIntentDetectionConfidence(),
	}
	if intent := result.GetIntent(); intent != nil {
		reply.Intent = intent.GetDisplayName()
	}
	return reply, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.sessions.Close()
}
