package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Skufu/symptomcheck/internal/dataset"
	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

type PredictRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1,dive,required"`
}

type TopPredictRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1,dive,required"`
	N        int      `json:"n" binding:"omitempty,min=1,max=100"`
}

type PredictResponse struct {
	RequestID       string   `json:"requestId"`
	UnknownSymptoms []string `json:"unknownSymptoms"`
	diagnosis.Prediction
}

type TopPredictResponse struct {
	RequestID       string                 `json:"requestId"`
	UnknownSymptoms []string               `json:"unknownSymptoms"`
	Predictions     []diagnosis.Prediction `json:"predictions"`
}

type SymptomEntry struct {
	dataset.Entry
	InModel bool `json:"inModel"`
}

type ConditionEntry struct {
	diagnosis.ConditionCount
	Specialist string `json:"specialist"`
}

type api struct {
	model       *diagnosis.Model
	catalog     *dataset.Catalog
	defaultTopN int
}

func newAPI(model *diagnosis.Model, catalog *dataset.Catalog, defaultTopN int) *api {
	return &api{model: model, catalog: catalog, defaultTopN: defaultTopN}
}

func (a *api) modelStats(c *gin.Context) {
	c.JSON(http.StatusOK, a.model.Stats())
}

func (a *api) listSymptoms(c *gin.Context) {
	found := a.catalog.Search(c.Query("q"), c.Query("category"))
	entries := make([]SymptomEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, SymptomEntry{Entry: e, InModel: a.model.KnowsSymptom(e.Symptom)})
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": a.catalog.Categories(),
		"symptoms":   entries,
	})
}

func (a *api) listConditions(c *gin.Context) {
	counts := a.model.Conditions()
	out := make([]ConditionEntry, 0, len(counts))
	for _, cc := range counts {
		out = append(out, ConditionEntry{
			ConditionCount: cc,
			Specialist:     a.model.Advisory(cc.Condition).Specialist.Type,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (a *api) predict(c *gin.Context) {
	var req PredictRequest
	if !bindPayload(c, &req) {
		return
	}

	p, err := a.model.Predict(req.Symptoms)
	if err != nil {
		predictionFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, PredictResponse{
		RequestID:       uuid.NewString(),
		UnknownSymptoms: a.unknownSymptoms(req.Symptoms),
		Prediction:      p,
	})
}

func (a *api) predictTop(c *gin.Context) {
	var req TopPredictRequest
	if !bindPayload(c, &req) {
		return
	}
	n := req.N
	if n == 0 {
		n = a.defaultTopN
	}

	top, err := a.model.TopN(req.Symptoms, n)
	if err != nil {
		predictionFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, TopPredictResponse{
		RequestID:       uuid.NewString(),
		UnknownSymptoms: a.unknownSymptoms(req.Symptoms),
		Predictions:     top,
	})
}

func (a *api) unknownSymptoms(symptoms []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range symptoms {
		if s == "" || seen[s] || a.model.KnowsSymptom(s) {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// bindPayload writes a 400 for malformed JSON and a 422 for payloads that
// parse but fail validation.
func bindPayload(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"details": describeValidation(verrs),
		})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
	return false
}

func describeValidation(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "N":
			out = append(out, "n must be between 1 and 100")
		default:
			out = append(out, "at least one non-empty symptom is required")
		}
	}
	return out
}

func predictionFailed(c *gin.Context, err error) {
	if errors.Is(err, diagnosis.ErrEmptyQuery) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"details": []string{err.Error()},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
}
