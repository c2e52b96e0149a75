package generator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CLIClient shells out to the Claude CLI instead of the API. Useful for
// local development on a subscription plan where API credits are not
// available.
type CLIClient struct {
	cliPath string
}

func NewCLIClient(cliPath string) *CLIClient {
	return &CLIClient{cliPath: cliPath}
}

func (c *CLIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	cmd := exec.CommandContext(ctx, c.cliPath,
		"--print",
		"--append-system-prompt", systemPrompt,
	)
	cmd.Stdin = bytes.NewBufferString(userPrompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("CLI generation failed: %w (stderr: %s)", err, stderr.String())
	}

	output := stdout.String()
	if output == "" {
		return nil, fmt.Errorf("CLI returned empty output")
	}

	// Token counts are not reported on the CLI path.
	return &LLMResponse{Content: output}, nil
}
