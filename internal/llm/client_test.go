package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(reason genai.FinishReason, parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: reason,
			Content:      &genai.Content{Parts: parts},
		}},
	}
}

func TestResponseText(t *testing.T) {
	text, err := responseText(candidate(genai.FinishReasonStop, genai.Text(`{"headline": `), genai.Text(`"Hi"}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"headline": "Hi"}`, text)
}

func TestResponseText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		wantErr string
	}{
		{name: "nil response", resp: nil, wantErr: "no candidates"},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: "no candidates"},
		{name: "no parts", resp: candidate(genai.FinishReasonStop), wantErr: "no content"},
		{name: "no text parts", resp: candidate(genai.FinishReasonStop, genai.Blob{MIMEType: "image/png"}), wantErr: "no text parts"},
		{name: "token limit", resp: candidate(genai.FinishReasonMaxTokens, genai.Text(`{"headline": "Wel`)), wantErr: "truncated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := responseText(tt.resp)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := responseText(candidate(genai.FinishReasonMaxTokens))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestConfigureModel(t *testing.T) {
	model := &genai.GenerativeModel{}
	configureModel(model, DefaultConfig())

	assert.Equal(t, "application/json", model.ResponseMIMEType)
	require.NotNil(t, model.MaxOutputTokens)
	assert.Equal(t, int32(1024), *model.MaxOutputTokens)
	require.NotNil(t, model.SystemInstruction)
	assert.Equal(t, []genai.Part{genai.Text(DefaultSystemInstruction)}, model.SystemInstruction.Parts)

	bare := &genai.GenerativeModel{}
	configureModel(bare, &Config{Temperature: 0.2})
	assert.Nil(t, bare.SystemInstruction)
	assert.Nil(t, bare.MaxOutputTokens)
	require.NotNil(t, bare.Temperature)
	assert.Equal(t, float32(0.2), *bare.Temperature)
}
