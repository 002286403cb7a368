package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/oselz/docserver-deploy/internal/config"
)

func testAppConfig() config.AppConfig {
	return config.AppConfig{
		Name:            "docserver",
		Namespace:       "default",
		Domain:          "docs.example.com",
		ImageRepository: "docserver",
	}
}

func TestBuildPVC(t *testing.T) {
	pvc := BuildPVC(testAppConfig())

	assert.Equal(t, "docserver-data", pvc.Name)
	assert.Equal(t, "default", pvc.Namespace)
	assert.Equal(t, []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce}, pvc.Spec.AccessModes)
	require.NotNil(t, pvc.Spec.StorageClassName)
	assert.Equal(t, "local-path", *pvc.Spec.StorageClassName)

	storage := pvc.Spec.Resources.Requests[corev1.ResourceStorage]
	assert.True(t, storage.Equal(resource.MustParse("128Mi")))
}

func TestBuildService(t *testing.T) {
	svc := BuildService(testAppConfig())

	assert.Equal(t, "docserver", svc.Name)
	assert.Equal(t, map[string]string{"app": "docserver"}, svc.Spec.Selector)
	require.Len(t, svc.Spec.Ports, 1)
	assert.Equal(t, int32(80), svc.Spec.Ports[0].Port)
	assert.Equal(t, int32(3000), svc.Spec.Ports[0].TargetPort.IntVal)
}

func TestBuildDeployment(t *testing.T) {
	dep := BuildDeployment(testAppConfig(), "docserver:20260823142557")

	require.NotNil(t, dep.Spec.Replicas)
	assert.Equal(t, int32(1), *dep.Spec.Replicas)
	assert.Equal(t, appsv1.RecreateDeploymentStrategyType, dep.Spec.Strategy.Type)

	require.Len(t, dep.Spec.Template.Spec.Containers, 1)
	container := dep.Spec.Template.Spec.Containers[0]
	assert.Equal(t, "docserver:20260823142557", container.Image)
	assert.Equal(t, corev1.PullNever, container.ImagePullPolicy)
	require.Len(t, container.Ports, 1)
	assert.Equal(t, int32(3000), container.Ports[0].ContainerPort)
}

func TestBuildDeployment_Environment(t *testing.T) {
	dep := BuildDeployment(testAppConfig(), "docserver:1")

	container := dep.Spec.Template.Spec.Containers[0]
	assert.Contains(t, container.Env, corev1.EnvVar{Name: "DOCSERVER_STATIC_PATH", Value: "/webroot/static"})
	assert.Contains(t, container.Env, corev1.EnvVar{Name: "DOCSERVER_CRATES_PATH", Value: "/webroot/crates"})
}

func TestBuildDeployment_DataVolume(t *testing.T) {
	dep := BuildDeployment(testAppConfig(), "docserver:1")

	container := dep.Spec.Template.Spec.Containers[0]
	require.Len(t, container.VolumeMounts, 1)
	assert.Equal(t, "/webroot/crates", container.VolumeMounts[0].MountPath)

	require.Len(t, dep.Spec.Template.Spec.Volumes, 1)
	claim := dep.Spec.Template.Spec.Volumes[0].PersistentVolumeClaim
	require.NotNil(t, claim)
	assert.Equal(t, "docserver-data", claim.ClaimName)
}

func TestBuildIngressRoute(t *testing.T) {
	route := BuildIngressRoute(testAppConfig())

	assert.Equal(t, "traefik.io/v1alpha1", route.GetAPIVersion())
	assert.Equal(t, "IngressRoute", route.GetKind())
	assert.Equal(t, "docserver", route.GetName())

	spec := route.Object["spec"].(map[string]any)
	assert.Equal(t, []any{"websecure"}, spec["entryPoints"])

	routes := spec["routes"].([]any)
	require.Len(t, routes, 1)
	assert.Equal(t, "Host(`docs.example.com`)", routes[0].(map[string]any)["match"])

	tls := spec["tls"].(map[string]any)
	assert.Equal(t, "letsencrypt", tls["certResolver"])
}

func TestBuild_Order(t *testing.T) {
	set := Build(testAppConfig(), "docserver:1")

	require.Len(t, set.Objects, 4)
	assert.IsType(t, &corev1.PersistentVolumeClaim{}, set.Objects[0])
	assert.IsType(t, &corev1.Service{}, set.Objects[1])
	assert.IsType(t, &appsv1.Deployment{}, set.Objects[2])
}

func TestRender(t *testing.T) {
	data, err := Build(testAppConfig(), "docserver:20260823142557").Render()
	require.NoError(t, err)

	docs := strings.Split(string(data), "---\n")
	assert.Len(t, docs, 4)
	assert.Contains(t, docs[0], "kind: PersistentVolumeClaim")
	assert.Contains(t, docs[1], "kind: Service")
	assert.Contains(t, docs[2], "kind: Deployment")
	assert.Contains(t, docs[3], "kind: IngressRoute")
	assert.Contains(t, docs[2], "image: docserver:20260823142557")
}
