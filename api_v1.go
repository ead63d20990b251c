package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

type jsonResponseData struct {
	ApiVersion string                 `json:"api_version"`
	Endpoint   string                 `json:"endpoint"`
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       map[string]interface{} `json:"data"`
}

func apiV1Handler(deps *Dependencies) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deps := requestDeps(w, r, deps)
		sublog := deps.logger

		params := mux.Vars(r)
		endpoint := params["endpoint"]

		jsonResponse := jsonResponseData{ApiVersion: apiVersion, Endpoint: endpoint, Success: false, Data: make(map[string]interface{})}
		status := http.StatusOK

		switch endpoint {
		case "version":
			jsonResponse.Success = true
			jsonResponse.Message = "ok"

		case "company":
			status = apiCompany(r, deps, &jsonResponse)

		case "summary":
			status = apiSummary(r, deps, &jsonResponse)

		default:
			sublog.Error().Str("api_version", jsonResponse.ApiVersion).Str("endpoint", endpoint).Err(fmt.Errorf("failure: call to unknown api endpoint")).Msg("api call failed")
			jsonResponse.Message = "Failure: unknown endpoint"
			status = http.StatusNotFound
		}

		renderJSON(w, deps, status, jsonResponse)
	})
}

func apiCompany(r *http.Request, deps *Dependencies, jsonResponse *jsonResponseData) int {
	corpCode := r.FormValue("corp_code")
	sublog := deps.logger.With().Str("api_version", jsonResponse.ApiVersion).Str("endpoint", jsonResponse.Endpoint).Str("corp_code", corpCode).Logger()

	if corpCode == "" {
		jsonResponse.Message = msgCorpCodeRequired
		return http.StatusBadRequest
	}

	company, err := fetchCompanyInfo(r.Context(), deps, corpCode)
	if err != nil {
		sublog.Error().Err(err).Msg("failed to load company")
		jsonResponse.Message = "Failure: could not load company"
		var dartErr *DartError
		if errors.As(err, &dartErr) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	jsonResponse.Success = true
	jsonResponse.Message = "ok"
	jsonResponse.Data["company"] = company
	return http.StatusOK
}

func apiSummary(r *http.Request, deps *Dependencies, jsonResponse *jsonResponseData) int {
	q := parseFinancialQuery(r)
	q.ViewMode = viewModePeriod
	sublog := deps.logger.With().Str("api_version", jsonResponse.ApiVersion).Str("endpoint", jsonResponse.Endpoint).Str("corp_code", q.CorpCode).Logger()

	if q.CorpCode == "" {
		jsonResponse.Message = msgCorpCodeRequired
		return http.StatusBadRequest
	}
	if !q.IsPeriod() {
		jsonResponse.Message = msgYearRangeRequired
		return http.StatusBadRequest
	}
	q = q.withCorpName(deps.corps)

	result, err := deps.dart.FinancialStatementsRange(r.Context(), q.CorpCode, q.StartYear, q.EndYear, q.ReportCode)
	if err != nil {
		if errors.Is(err, errInvalidYearRange) {
			jsonResponse.Message = msgYearRangeInvalid
			return http.StatusBadRequest
		}
		sublog.Warn().Err(err).Msg("failed to load statements for summary")
		jsonResponse.Message = UserFacingError(q.CorpName, q.CorpCode, q.YearLabel(), q.ReportCode, err)
		return http.StatusNotFound
	}

	summary := BuildSummary(Partition(result.Items), q.StartYear, q.EndYear)
	jsonResponse.Success = true
	jsonResponse.Message = "ok"
	jsonResponse.Data["corp_code"] = q.CorpCode
	jsonResponse.Data["corp_name"] = q.CorpName
	jsonResponse.Data["summary"] = summary
	return http.StatusOK
}
