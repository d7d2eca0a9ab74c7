package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/finwise/fincalc/internal/output"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchSize = 100
)

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
}

// BatchRequest is the body for POST /api/v1/batch.
type BatchRequest struct {
	Calculations []domain.CalculationRequest `json:"calculations"`
}

// BatchResponse is the data of a batch reply.
type BatchResponse struct {
	Items      []output.RenderedItem `json:"items"`
	Failed     int                   `json:"failed"`
	Highlights []output.Highlight    `json:"highlights,omitempty"`
}

// ScheduleResponse is the data of a schedule reply.
type ScheduleResponse struct {
	Summary output.RenderedResult `json:"summary"`
	Rows    interface{}           `json:"rows"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":      "ok",
			"calculators": len(domain.AllCalculatorKinds()),
		},
	})
}

func (s *Server) handleCalculators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.svc.Catalog()})
}

func (s *Server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseCalculatorKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	c, _ := domain.DescribeCalculator(kind)
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: c})
}

// handleCalculate accepts a full CalculationRequest.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if kind, err := domain.ParseCalculatorKind(string(req.Calculator)); err == nil {
		req.Calculator = kind
	}
	s.calculate(w, r, req)
}

// handleCalculateKind accepts the bare input of the calculator named in the path.
func (s *Server) handleCalculateKind(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseCalculatorKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req domain.CalculationRequest
	switch kind {
	case domain.KindSIP:
		var in domain.SIPInput
		if !decodeBody(w, r, &in) {
			return
		}
		req = domain.NewSIPRequest("", in)
	case domain.KindEMI:
		var in domain.EMIInput
		if !decodeBody(w, r, &in) {
			return
		}
		req = domain.NewEMIRequest("", in)
	case domain.KindPPF:
		var in domain.PPFInput
		if !decodeBody(w, r, &in) {
			return
		}
		req = domain.NewPPFRequest("", in)
	case domain.KindRetirement:
		var in domain.RetirementInput
		if !decodeBody(w, r, &in) {
			return
		}
		req = domain.NewRetirementRequest("", in)
	}
	s.calculate(w, r, req)
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request, req domain.CalculationRequest) {
	result, err := s.svc.Calculate(r.Context(), req)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: output.Render(result)})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Calculations) == 0 {
		writeInvalid(w, domain.NewInvalidInput("calculations", "at least one calculation is required"))
		return
	}
	if len(body.Calculations) > maxBatchSize {
		writeInvalid(w, domain.NewInvalidInput("calculations", fmt.Sprintf("at most %d calculations per batch", maxBatchSize)))
		return
	}
	for i := range body.Calculations {
		if kind, err := domain.ParseCalculatorKind(string(body.Calculations[i].Calculator)); err == nil {
			body.Calculations[i].Calculator = kind
		}
	}

	report, err := s.svc.Batch(r.Context(), body.Calculations)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: BatchResponse{
		Items:      output.RenderBatch(report),
		Failed:     report.FailedCount(),
		Highlights: output.AnalyzeBatch(report),
	}})
}

func (s *Server) handleEMISchedule(w http.ResponseWriter, r *http.Request) {
	var in domain.EMIInput
	if !decodeBody(w, r, &in) {
		return
	}
	result, err := s.svc.Calculate(r.Context(), domain.NewEMIRequest("", in))
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	rows, err := s.svc.Amortization(in)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: ScheduleResponse{Summary: output.Render(result), Rows: rows}})
}

func (s *Server) handlePPFSchedule(w http.ResponseWriter, r *http.Request) {
	var in domain.PPFInput
	if !decodeBody(w, r, &in) {
		return
	}
	result, err := s.svc.Calculate(r.Context(), domain.NewPPFRequest("", in))
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	rows, err := s.svc.PPFLedger(in)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: ScheduleResponse{Summary: output.Render(result), Rows: rows}})
}

// decodeBody reads a JSON body into v, replying 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		msg := "invalid request body"
		if !errors.Is(err, io.EOF) {
			msg = fmt.Sprintf("invalid request body: %v", err)
		}
		writeError(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	if inv, ok := domain.AsInvalidInput(err); ok {
		writeInvalid(w, inv)
		return
	}
	s.logger.Error("calculation failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeInvalid(w http.ResponseWriter, inv *domain.InvalidInputError) {
	writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Error:   inv.Error(),
		Field:   inv.Field,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
