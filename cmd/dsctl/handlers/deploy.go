package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/image"
	"github.com/oselz/docserver-deploy/internal/manifest"
	"github.com/oselz/docserver-deploy/internal/util/prerequisites"
)

// DeployOptions holds options for the deploy command.
type DeployOptions struct {
	ConfigPath  string
	SkipBuild   bool
	DryRun      bool
	WaitTimeout time.Duration
}

// ImageBuilder is the subset of image.Builder the handler needs.
type ImageBuilder interface {
	BuildBinary(ctx context.Context) error
	Stage() error
	BuildImage(ctx context.Context, ref string) error
}

// newImageBuilder creates an image builder - can be replaced in tests.
var newImageBuilder = func(cfg config.BuildConfig) ImageBuilder {
	return image.NewBuilder(cfg, nil)
}

// checkPrerequisites verifies the required local tools are installed - can
// be replaced in tests.
var checkPrerequisites = func(containerTool string, skipBuild bool) error {
	return prerequisites.Check(prerequisites.DeployTools(containerTool, skipBuild)).Error()
}

// Deploy builds the docserver image and rolls it out to the cluster.
//
// The sequence is strictly linear and aborts on the first failure. The
// image tag is derived from the deploy time at one-second resolution, so
// every invocation produces a distinct tag and the Deployment always rolls
// to the freshly imported image.
func Deploy(ctx context.Context, opts DeployOptions) error {
	cfg, err := loadConfig(configPathOrDefault(opts.ConfigPath))
	if err != nil {
		return err
	}

	skipBuild := opts.SkipBuild || cfg.Build.SkipBuild

	ref, err := image.Tag(cfg.App.ImageRepository, timeNow())
	if err != nil {
		return err
	}

	if opts.DryRun {
		return printDeployPlan(cfg, ref)
	}

	if err := checkPrerequisites(cfg.Build.ContainerTool, skipBuild); err != nil {
		return err
	}

	builder := newImageBuilder(cfg.Build)

	if skipBuild {
		log.Println("Phase 1/5: Skipping binary build (reusing existing artifact)")
	} else {
		log.Println("Phase 1/5: Compiling release binary...")
		if err := builder.BuildBinary(ctx); err != nil {
			return err
		}
	}

	log.Println("Phase 2/5: Staging build context...")
	if err := builder.Stage(); err != nil {
		return err
	}

	log.Printf("Phase 3/5: Building image %s...", ref)
	if err := builder.BuildImage(ctx, ref); err != nil {
		return err
	}

	log.Println("Phase 4/5: Streaming image to host...")
	comm, err := newCommunicator(cfg)
	if err != nil {
		return err
	}
	if err := importImage(ctx, comm, cfg.Build.ContainerTool, ref); err != nil {
		return err
	}

	log.Println("Phase 5/5: Applying manifests...")
	client, err := newKubeClient(cfg.Cluster.KubeconfigPath)
	if err != nil {
		return err
	}

	manifests, err := manifest.Build(cfg.App, ref).Render()
	if err != nil {
		return err
	}
	if err := client.Apply(ctx, string(manifests)); err != nil {
		return err
	}

	timeout := opts.WaitTimeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	log.Println("Waiting for rollout...")
	if err := client.WaitForDeployment(ctx, cfg.App.Namespace, cfg.App.Name, timeout); err != nil {
		return fmt.Errorf("rollout did not become ready: %w", err)
	}

	fmt.Printf("\nDeploy complete!\n")
	fmt.Printf("Image: %s\n", ref)
	fmt.Printf("URL:   https://%s\n", cfg.App.Domain)
	return nil
}

// printDeployPlan prints the image reference and manifest set.
func printDeployPlan(cfg *config.Config, ref string) error {
	manifests, err := manifest.Build(cfg.App, ref).Render()
	if err != nil {
		return err
	}

	fmt.Printf("# image: %s\n---\n%s", ref, manifests)
	return nil
}
