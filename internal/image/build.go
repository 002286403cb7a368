package image

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oselz/docserver-deploy/internal/config"
)

// Builder compiles the docserver binary and assembles the container image.
type Builder struct {
	cfg    config.BuildConfig
	runner CommandRunner
}

// NewBuilder creates a Builder for the given build configuration.
func NewBuilder(cfg config.BuildConfig, runner CommandRunner) *Builder {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Builder{cfg: cfg, runner: runner}
}

// BuildBinary compiles the release binary for the static Linux target by
// invoking the configured build command in the source directory.
func (b *Builder) BuildBinary(ctx context.Context) error {
	if len(b.cfg.Command) == 0 {
		return fmt.Errorf("build command is empty")
	}

	if err := b.runner.Run(ctx, b.cfg.SourceDir, b.cfg.Command[0], b.cfg.Command[1:]...); err != nil {
		return fmt.Errorf("binary build failed: %w", err)
	}

	return nil
}

// Stage resets the staging directory and repopulates it with the binary,
// the static asset tree, and the Dockerfile. The reset is wholesale: any
// leftover state from a previous deploy is removed first.
func (b *Builder) Stage() error {
	if err := os.RemoveAll(b.cfg.StagingDir); err != nil {
		return fmt.Errorf("failed to reset staging dir: %w", err)
	}
	if err := os.MkdirAll(b.cfg.StagingDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging dir: %w", err)
	}

	binary := filepath.Join(b.cfg.SourceDir, b.cfg.BinaryPath)
	if err := copyFile(binary, filepath.Join(b.cfg.StagingDir, "docserver"), 0o755); err != nil {
		return fmt.Errorf("failed to stage binary: %w", err)
	}

	static := filepath.Join(b.cfg.SourceDir, b.cfg.StaticDir)
	if err := copyTree(static, filepath.Join(b.cfg.StagingDir, "static")); err != nil {
		return fmt.Errorf("failed to stage static assets: %w", err)
	}

	if err := os.WriteFile(filepath.Join(b.cfg.StagingDir, "Dockerfile"), []byte(dockerfile), 0o644); err != nil {
		return fmt.Errorf("failed to write Dockerfile: %w", err)
	}

	return nil
}

// BuildImage builds the container image from the staging directory under
// the given reference.
func (b *Builder) BuildImage(ctx context.Context, ref string) error {
	if err := b.runner.Run(ctx, b.cfg.StagingDir, b.cfg.ContainerTool, "build", "-t", ref, "."); err != nil {
		return fmt.Errorf("image build failed: %w", err)
	}

	return nil
}

// dockerfile is the minimal image recipe: the static binary plus the asset
// tree, nothing else. Runtime paths are injected by the Deployment.
const dockerfile = `FROM scratch
COPY docserver /docserver
COPY static ` + config.WebrootStaticPath + `
EXPOSE 3000
ENTRYPOINT ["/docserver", "serve"]
`

// copyFile copies a single file, creating parent directories as needed.
func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src) // #nosec G304
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, mode)
}

// copyTree copies a directory tree.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}
