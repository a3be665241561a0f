package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lanhoang/perfreview/config"
	"github.com/lanhoang/perfreview/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ExamAnalyzerService is the boundary to the external document-understanding
// pipeline: OCR, segmentation, topic mapping, and scoring of one scanned
// script. It is the only latency-bearing dependency of a submission.
type ExamAnalyzerService interface {
	AnalyzeExamSheet(ctx context.Context, document []byte, mimeType, fileName, studentName, studentID string) (*model.ExamAnalysis, error)
}

type geminiAnalyzerService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiAnalyzerService(cfg *config.Config) (ExamAnalyzerService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. ExamAnalyzerService will be non-functional.")
		return &geminiAnalyzerService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel("gemini-1.5-flash")
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = analysisResponseSchema()
	return &geminiAnalyzerService{client: m, cfg: cfg}, nil
}

// analysisResponseSchema constrains Gemini to the analysis record contract
// so the response parses without prose scraping.
func analysisResponseSchema() *genai.Schema {
	segmentSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question_number": {Type: genai.TypeString},
			"question_text":   {Type: genai.TypeString},
			"student_answer":  {Type: genai.TypeString},
			"score":           {Type: genai.TypeNumber},
			"max_score":       {Type: genai.TypeNumber},
			"feedback":        {Type: genai.TypeString},
		},
		Required: []string{"question_text", "student_answer", "score", "feedback"},
	}
	topicSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic":     {Type: genai.TypeString, Description: "The unit/topic folder name"},
			"score":     {Type: genai.TypeNumber},
			"max_score": {Type: genai.TypeNumber},
			"feedback":  {Type: genai.TypeString},
			"segments":  {Type: genai.TypeArray, Items: segmentSchema},
		},
		Required: []string{"topic", "score", "max_score", "feedback", "segments"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"subject":       {Type: genai.TypeString},
			"overall_score": {Type: genai.TypeNumber},
			"topics":        {Type: genai.TypeArray, Items: topicSchema},
			"raw_text":      {Type: genai.TypeString},
		},
		Required: []string{"subject", "overall_score", "topics"},
	}
}

// Wire payloads use pointers for required fields so a missing field is
// distinguishable from a zero value.
type analysisPayload struct {
	Subject      string         `json:"subject"`
	OverallScore *float64       `json:"overall_score"`
	Topics       []topicPayload `json:"topics"`
	RawText      string         `json:"raw_text"`
}

type topicPayload struct {
	Topic    string           `json:"topic"`
	Score    *float64         `json:"score"`
	MaxScore *float64         `json:"max_score"`
	Feedback *string          `json:"feedback"`
	Segments []segmentPayload `json:"segments"`
}

type segmentPayload struct {
	QuestionNumber string   `json:"question_number"`
	QuestionText   *string  `json:"question_text"`
	StudentAnswer  *string  `json:"student_answer"`
	Score          *float64 `json:"score"`
	MaxScore       float64  `json:"max_score"`
	Feedback       *string  `json:"feedback"`
}

func buildAnalysisPrompt(fileName, studentName, studentID string) string {
	var b strings.Builder
	b.WriteString("SYSTEM INSTRUCTION: You are a Backend Processing Engine for \"Performance Review Package\".\n\n")
	b.WriteString("PIPELINE STEPS:\n")
	b.WriteString("1. OCR & CLEAN: Extract all text from the provided image/document. Remove noise and formatting artifacts.\n")
	b.WriteString("2. SEGMENTATION: Break the text into distinct Question-Answer segments.\n")
	b.WriteString("3. TOPIC MAPPING: For each QA segment, determine which overarching Topic/Unit it belongs to (e.g. \"Algebra\", \"Calculus\").\n")
	b.WriteString("4. SCORING: Evaluate the answer quality and assign a score.\n")
	b.WriteString("5. FOLDER GENERATION: Organize the data into a structure that mimics a topic-based filesystem.\n\n")
	b.WriteString("INPUT:\n")
	b.WriteString(fmt.Sprintf("Student: %s (%s)\n", studentName, studentID))
	b.WriteString(fmt.Sprintf("File: %s\n\n", fileName))
	b.WriteString("RESPONSE REQUIREMENTS:\n")
	b.WriteString("- Return a strict JSON object.\n")
	b.WriteString("- Ensure \"segments\" within each topic contain the specific text of the questions and answers.\n")
	b.WriteString("- Provide expert, constructive feedback for every segment.\n")
	return b.String()
}

func (s *geminiAnalyzerService) AnalyzeExamSheet(ctx context.Context, document []byte, mimeType, fileName, studentName, studentID string) (*model.ExamAnalysis, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	parts := []genai.Part{
		genai.Text(buildAnalysisPrompt(fileName, studentName, studentID)),
		genai.Blob{MIMEType: mimeType, Data: document},
	}

	resp, err := s.client.GenerateContent(ctx, parts...)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("Gemini API error during exam analysis")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	analysis, err := parseAnalysisResponse([]byte(fullResponseText))
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", fullResponseText).Msg("Failed to parse analysis from Gemini response")
		return nil, err
	}
	return analysis, nil
}

// parseAnalysisResponse decodes and validates the collaborator response.
// Any missing required field is an error; the caller maps it to a
// processing failure.
func parseAnalysisResponse(raw []byte) (*model.ExamAnalysis, error) {
	var payload analysisPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}

	if payload.Subject == "" {
		return nil, fmt.Errorf("analysis response is missing required field 'subject'")
	}
	if payload.OverallScore == nil {
		return nil, fmt.Errorf("analysis response is missing required field 'overall_score'")
	}
	if payload.Topics == nil {
		return nil, fmt.Errorf("analysis response is missing required field 'topics'")
	}

	analysis := &model.ExamAnalysis{
		Subject:      payload.Subject,
		OverallScore: *payload.OverallScore,
		RawText:      payload.RawText,
		Topics:       make([]model.TopicResult, 0, len(payload.Topics)),
	}

	for i, t := range payload.Topics {
		if t.Topic == "" || t.Score == nil || t.MaxScore == nil || t.Feedback == nil || t.Segments == nil {
			return nil, fmt.Errorf("topic %d is missing required fields", i)
		}
		topic := model.TopicResult{
			Topic:    t.Topic,
			Score:    *t.Score,
			MaxScore: *t.MaxScore,
			Feedback: *t.Feedback,
			Segments: make([]model.AnswerSegment, 0, len(t.Segments)),
		}
		for j, seg := range t.Segments {
			if seg.QuestionText == nil || seg.StudentAnswer == nil || seg.Score == nil || seg.Feedback == nil {
				return nil, fmt.Errorf("segment %d of topic %q is missing required fields", j, t.Topic)
			}
			topic.Segments = append(topic.Segments, model.AnswerSegment{
				QuestionNumber: seg.QuestionNumber,
				QuestionText:   *seg.QuestionText,
				StudentAnswer:  *seg.StudentAnswer,
				Score:          *seg.Score,
				MaxScore:       seg.MaxScore,
				Feedback:       *seg.Feedback,
			})
		}
		analysis.Topics = append(analysis.Topics, topic)
	}

	return analysis, nil
}
