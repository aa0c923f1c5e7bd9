package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crossfilled.com/fill"
	"crossfilled.com/fill/internal/loader"
)

type SolveGridRequest struct {
	Structure      []string `json:"structure"`
	Words          []string `json:"words"`
	WordScope      string   `json:"wordScope"`
	IncludeObscure bool     `json:"includeObscure"`
}

type SolveGridResponse struct {
	Success    bool              `json:"success"`
	Grid       string            `json:"grid,omitempty"`
	Assignment map[string]string `json:"assignment,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string, includeObscure bool) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "xword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	obscureValues := []string{"false"}
	if includeObscure {
		obscureValues = append(obscureValues, "true")
	}
	query := fmt.Sprintf("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = %q AND obscure IN (%s)", scope, strings.Join(obscureValues, ","))
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req SolveGridRequest) (string, map[string]string, error) {
	if len(req.Structure) == 0 {
		return "", nil, fmt.Errorf("structure must not be empty")
	}

	for i, word := range req.Words {
		req.Words[i] = strings.ToLower(word)
	}

	if req.WordScope != "" {
		scoped, err := getWords(ctx, req.WordScope, req.IncludeObscure)
		if err != nil {
			return "", nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Int("count", len(scoped)).Str("scope", req.WordScope).Msg("loaded scoped words")
		req.Words = append(req.Words, scoped...)
	}

	if len(req.Words) == 0 {
		return "", nil, fmt.Errorf("words must not be empty")
	}

	slots, err := loader.Structure(strings.NewReader(strings.Join(req.Structure, "\n")))
	if err != nil {
		return "", nil, fmt.Errorf("parsing structure: %w", err)
	}
	puzzle, err := fill.NewPuzzle(slots)
	if err != nil {
		return "", nil, fmt.Errorf("invalid structure: %w", err)
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solver := fill.NewSolver(puzzle, req.Words)
	assignment, solved := solver.Solve(ctx)
	if !solved {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("solver timed out: %w", err)
		}
		return "", nil, nil
	}

	byslot := make(map[string]string, len(assignment))
	for slot, word := range assignment {
		byslot[slot.String()] = word
	}
	return fill.RenderGrid(puzzle, assignment).Repr(), byslot, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveGrid(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		response := SolveGridResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	grid, assignment, err := execute(r.Context(), req)

	response := SolveGridResponse{
		Success:    err == nil && assignment != nil,
		Grid:       grid,
		Assignment: assignment,
	}
	if err != nil {
		response.Error = err.Error()
	} else if assignment == nil {
		response.Error = "No solution exists for the given structure and words"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	funcframework.RegisterHTTPFunction("/solve-grid", solveGrid)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
