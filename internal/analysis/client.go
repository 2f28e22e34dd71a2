package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

// Client talks to an OpenAI-compatible chat-completions API and constrains
// every response to a declared JSON schema.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		api:     openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

// AnalyzeWorkouts asks the model for a structured verdict on recent workouts.
func (c *Client) AnalyzeWorkouts(ctx context.Context, bundle *domain.WorkoutBundle) (*WorkoutAnalysis, error) {
	prompt, err := workoutPrompt(bundle)
	if err != nil {
		return nil, badResponseErr(err)
	}

	var result WorkoutAnalysis
	if err := c.complete(ctx, "WorkoutAnalysis",
		"Analyze workout intensity and recovery, responding in strict JSON.",
		workoutAnalysisSchema, prompt, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeHealth asks the model for a structured verdict on daily health rows.
func (c *Client) AnalyzeHealth(ctx context.Context, bundle *domain.HealthBundle) (*HealthAnalysis, error) {
	prompt, err := healthPrompt(bundle)
	if err != nil {
		return nil, badResponseErr(err)
	}

	var result HealthAnalysis
	if err := c.complete(ctx, "HealthAnalysis",
		"Analyze sleep, resting heart rate and activity, responding in strict JSON.",
		healthAnalysisSchema, prompt, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) complete(ctx context.Context, name, description string, schema interface{}, prompt string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(description),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	chat, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
		Model: c.model,
	})
	if err != nil {
		gerr := classifyErr(err)
		log.Printf("analysis call failed (%s): %v", gerr.Kind, err)
		return gerr
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return badResponseErr(errors.New("empty completion"))
	}
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), out); err != nil {
		return badResponseErr(err)
	}
	return nil
}

func workoutPrompt(bundle *domain.WorkoutBundle) (string, error) {
	data, err := json.Marshal(bundle.Workouts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Analyze the following workouts for the user.
User Goal: %s
User Age: %s
User Weight: %s
User Height: %s
User Gender: %s
Data: %s

Provide a strict JSON response analyzing intensity and recommendations.`,
		bundle.UserGoal,
		orUnknownInt(bundle.UserAge),
		orUnknownFloat(bundle.UserWeight),
		orUnknownFloat(bundle.UserHeight),
		orUnknownGender(bundle.UserGender),
		data,
	), nil
}

func healthPrompt(bundle *domain.HealthBundle) (string, error) {
	data, err := json.Marshal(bundle.HealthData)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Analyze the following health data for the user.
User Age: %s
User Weight: %s
User Height: %s
User Gender: %s
Data: %s

Provide a strict JSON response analyzing sleep quality, resting heart rate and activity.`,
		orUnknownInt(bundle.UserAge),
		orUnknownFloat(bundle.UserWeight),
		orUnknownFloat(bundle.UserHeight),
		orUnknownGender(bundle.UserGender),
		data,
	), nil
}

func orUnknownInt(v *int) string {
	if v == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%d", *v)
}

func orUnknownFloat(v *float64) string {
	if v == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%g", *v)
}

func orUnknownGender(v *domain.Gender) string {
	if v == nil {
		return "Unknown"
	}
	return string(*v)
}
