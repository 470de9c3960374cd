// Package main implements the ml_service CLI for the AI Career Coach ML service.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-coach-ml/internal/config"
	"github.com/jonathan/career-coach-ml/internal/observability"
	"github.com/jonathan/career-coach-ml/internal/salary"
	"github.com/jonathan/career-coach-ml/internal/schemas"
	"github.com/jonathan/career-coach-ml/internal/types"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate a salary from a list of skills",
	Long:  "Runs the salary estimator offline: takes skills from --skills or a prediction request JSON file and prints the prediction response JSON that the API would return.",
	RunE:  runPredict,
}

var (
	predictConfigPath string
	predictSkills     string
	predictInputFile  string
	predictOutputFile string
	predictVerbose    bool
)

func init() {
	predictCmd.Flags().StringVar(&predictConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	predictCmd.Flags().StringVarP(&predictSkills, "skills", "s", "", "Comma-separated list of skills (mutually exclusive with --in)")
	predictCmd.Flags().StringVarP(&predictInputFile, "in", "i", "", "Path to prediction request JSON file (mutually exclusive with --skills)")
	predictCmd.Flags().StringVarP(&predictOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	predictCmd.Flags().BoolVarP(&predictVerbose, "verbose", "v", false, "Print a detailed estimate breakdown")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	if predictSkills != "" && predictInputFile != "" {
		return fmt.Errorf("--skills and --in are mutually exclusive; provide only one")
	}

	// Load config file if provided
	var cfg config.Config
	if predictConfigPath != "" {
		loadedCfg, err := config.LoadConfig(predictConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = predictVerbose
	}

	// 1. Build the prediction request from --in or --skills.
	// With neither flag the request is empty and the estimate is the base salary.
	var req *types.PredictionRequest
	if predictInputFile != "" {
		loaded, err := loadPredictionRequest(predictInputFile)
		if err != nil {
			return err
		}
		req = loaded
	} else {
		req = skillsToRequest(predictSkills)
	}

	// 2. Estimate
	resp := salary.NewEstimator().EstimateRequest(req)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintEstimate(req, resp)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prediction response to JSON: %w", err)
	}

	// 4. Validate output against schema (if schema file exists)
	if schemaPath := schemas.ResolveSchemaPath("schemas/predict_response.schema.json"); schemaPath != "" {
		schemaContent, readErr := os.ReadFile(schemaPath)
		if readErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not read response schema: %v\n", readErr)
		} else if err := schemas.ValidateJSONString(string(schemaContent), string(jsonOutput)); err != nil {
			// Distinguish between validation errors (data doesn't match schema) and schema load errors
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				// Actual validation failure - return error
				return fmt.Errorf("generated prediction does not validate against schema: %w", err)
			} else if errors.As(err, &schemaLoadErr) {
				// Schema loading issue - log warning and continue
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			} else {
				// Other errors - log warning and continue
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}
	// If schema path not found, skip validation (non-fatal)

	// 5. Write to the output file or stdout
	if predictOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(predictOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(predictOutputFile, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write prediction to output file %s: %w", predictOutputFile, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote prediction to %s\n", predictOutputFile)

	return nil
}

// loadPredictionRequest reads and decodes a prediction request JSON file.
func loadPredictionRequest(path string) (*types.PredictionRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}

	var req types.PredictionRequest
	if err := json.Unmarshal(content, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction request JSON: %w", err)
	}

	// Validate input request against schema (optional but recommended)
	if schemaPath := schemas.ResolveSchemaPath("schemas/predict_request.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input request failed schema validation: %v\n", err)
		}
	}

	return &req, nil
}

// skillsToRequest builds a prediction request from a comma-separated skill list.
// Blank entries are dropped, so a trailing comma does not inflate the estimate.
func skillsToRequest(list string) *types.PredictionRequest {
	req := &types.PredictionRequest{}
	if list == "" {
		return req
	}

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		raw, _ := json.Marshal(name)
		req.Skills = append(req.Skills, json.RawMessage(raw))
	}

	return req
}
