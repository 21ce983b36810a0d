package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"

	"github.com/wolfeidau/abacgen/internal/abac"
	"github.com/wolfeidau/abacgen/internal/logger"
	"github.com/wolfeidau/abacgen/internal/population"
)

// Default artifact names per preset.
const (
	basicOutputFile    = "edocument_large.abac"
	extendedOutputFile = "edocument_extended_large.abac"
)

type GenerateCmd struct {
	Preset   string `help:"Generation preset" enum:"basic,extended" default:"basic"`
	Out      string `help:"Output file path (defaults to the preset's artifact name)"`
	Seed     int64  `help:"Random seed" default:"42"`
	Compress bool   `help:"Compress the artifact with zstd (appends .zst)" default:"false"`
	Config   string `help:"YAML config file overriding preset parameters"`
}

func (g *GenerateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	cfg, pop, err := buildPopulation(g.Preset, g.Seed, g.Config, log)
	if err != nil {
		return err
	}

	path := g.Out
	if path == "" {
		path = basicOutputFile
		if cfg.Extended {
			path = extendedOutputFile
		}
	}
	if g.Compress {
		path += ".zst"
	}

	if err := g.writeArtifact(path, cfg, pop); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat output file: %w", err)
	}

	log.Info().
		Str("path", path).
		Str("preset", cfg.Preset).
		Float64("size_mb", float64(info.Size())/1024/1024).
		Msg("artifact written")

	fmt.Printf("ABAC policy generated and saved as '%s'.\n", path)
	return nil
}

func (g *GenerateCmd) writeArtifact(path string, cfg *population.Config, pop *population.Population) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	var out io.Writer = f
	var enc *zstd.Encoder
	if g.Compress {
		enc, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		out = enc
	}

	if err := abac.NewWriter(cfg).Write(out, pop); err != nil {
		return err
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush zstd writer: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// buildPopulation resolves the preset, applies overrides, and runs the
// generation pipeline. Shared between generate and export.
func buildPopulation(preset string, seed int64, configPath string, log zerolog.Logger) (*population.Config, *population.Population, error) {
	cfg, err := population.ConfigForPreset(preset)
	if err != nil {
		return nil, nil, err
	}
	cfg.Seed = seed
	cfg.Now = time.Now()

	if configPath != "" {
		if err := applyConfigFile(configPath, cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	runLog := log.With().Str("run_id", uuid.NewString()).Str("preset", cfg.Preset).Logger()
	runLog.Info().Int64("seed", cfg.Seed).Msg("generating population")

	pop, err := population.NewGenerator(cfg, runLog).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("generation failed: %w", err)
	}
	return cfg, pop, nil
}
