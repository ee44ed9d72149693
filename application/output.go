package application

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bumpwatch/domain"
)

const (
	outputEnvVar       = "GITHUB_OUTPUT"
	outputFileMode     = 0o644
	hasMajorBumpOutput = "has-major-bump"
	majorBumpsOutput   = "major-bumps"
)

// WriteWorkflowOutputs publishes the check result as workflow outputs:
// a textual boolean and the bumps mapping as a single-line JSON object
// (path -> ["old", "new"]; {} when there are none). When no output file is
// configured the values are logged instead, so a successful run always
// surfaces exactly one boolean and one mapping.
func WriteWorkflowOutputs(result domain.AnalysisResult) error {
	bumps, err := json.Marshal(result.MajorBumps)
	if err != nil {
		return fmt.Errorf("failed to serialize major bumps: %w", err)
	}

	hasBump := strconv.FormatBool(result.HasMajorBump)

	outputPath := os.Getenv(outputEnvVar)
	if outputPath == "" {
		logger.Infof("%s=%s", hasMajorBumpOutput, hasBump)
		logger.Infof("%s=%s", majorBumpsOutput, string(bumps))
		return nil
	}

	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", outputPath, err)
	}
	defer file.Close()

	lines := fmt.Sprintf(
		"%s=%s\n%s=%s\n",
		hasMajorBumpOutput, hasBump,
		majorBumpsOutput, string(bumps),
	)
	if _, err := file.WriteString(lines); err != nil {
		return fmt.Errorf("failed to write outputs to %q: %w", outputPath, err)
	}

	return nil
}
