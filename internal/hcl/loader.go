package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/ctxlog"
	"github.com/vk/shapegridgo/internal/fsutil"
	"github.com/vk/shapegridgo/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL suite loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every suite file under the given paths, decodes them, and
// merges them into one format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Evaluator, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindSuiteFiles(path, ".hcl")
		if err != nil {
			return nil, nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Suite files resolved.", "count", len(files))

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no suite files (*.hcl) found under %v", paths)
	}

	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var suite schema.SuiteConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &suite); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		l.translateSuite(&suite, model)
		logger.Debug("Suite file loaded.", "file", file,
			"dims", len(suite.Dims), "sessions", len(suite.Sessions), "broadcasts", len(suite.Broadcasts))
	}

	return model, &Evaluator{}, nil
}
