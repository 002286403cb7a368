package manifest

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/oselz/docserver-deploy/internal/config"
)

const (
	// servicePort is the in-cluster port the Service exposes; the
	// container itself listens on config.ContainerPort.
	servicePort = 80

	// dataVolumeName is the PVC and volume name suffix convention.
	dataVolumeName = "data"
)

// labels returns the selector labels shared by all objects.
func labels(app config.AppConfig) map[string]string {
	return map[string]string{"app": app.Name}
}

// dataClaimName returns the PVC name for the app's data volume.
func dataClaimName(app config.AppConfig) string {
	return app.Name + "-" + dataVolumeName
}

// BuildPVC returns the claim backing the package documentation data
// directory: 128Mi on the k3s local-path provisioner, same sizing as the
// ingress controller's certificate store.
func BuildPVC(app config.AppConfig) *corev1.PersistentVolumeClaim {
	storageClass := config.StorageClass

	return &corev1.PersistentVolumeClaim{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "PersistentVolumeClaim",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      dataClaimName(app),
			Namespace: app.Namespace,
			Labels:    labels(app),
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes:      []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
			StorageClassName: &storageClass,
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: resource.MustParse(config.VolumeSize),
				},
			},
		},
	}
}

// BuildService returns the ClusterIP service fronting the docserver pods.
func BuildService(app config.AppConfig) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      app.Name,
			Namespace: app.Namespace,
			Labels:    labels(app),
		},
		Spec: corev1.ServiceSpec{
			Selector: labels(app),
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       servicePort,
					TargetPort: intstr.FromInt32(config.ContainerPort),
				},
			},
		},
	}
}

// BuildDeployment returns the docserver Deployment for the given image
// reference. The Recreate strategy is required because the data volume is
// ReadWriteOnce; a rolling update would deadlock on the claim.
func BuildDeployment(app config.AppConfig, imageRef string) *appsv1.Deployment {
	replicas := int32(1)

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      app.Name,
			Namespace: app.Namespace,
			Labels:    labels(app),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: labels(app),
			},
			Strategy: appsv1.DeploymentStrategy{
				Type: appsv1.RecreateDeploymentStrategyType,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels(app),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  app.Name,
							Image: imageRef,
							// The image is imported straight into
							// containerd, never pushed to a registry
							ImagePullPolicy: corev1.PullNever,
							Ports: []corev1.ContainerPort{
								{
									Name:          "http",
									ContainerPort: config.ContainerPort,
								},
							},
							Env: []corev1.EnvVar{
								{Name: config.EnvStaticPath, Value: config.WebrootStaticPath},
								{Name: config.EnvCratesPath, Value: config.WebrootCratesPath},
							},
							VolumeMounts: []corev1.VolumeMount{
								{
									Name:      dataVolumeName,
									MountPath: config.WebrootCratesPath,
								},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: dataVolumeName,
							VolumeSource: corev1.VolumeSource{
								PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
									ClaimName: dataClaimName(app),
								},
							},
						},
					},
				},
			},
		},
	}
}

// BuildIngressRoute returns the Traefik IngressRoute terminating TLS with
// the ACME resolver and routing the app's domain to the service.
// IngressRoute is a Traefik CRD, so it is built unstructured.
func BuildIngressRoute(app config.AppConfig) *unstructured.Unstructured {
	return &unstructured.Unstructured{
		Object: map[string]any{
			"apiVersion": "traefik.io/v1alpha1",
			"kind":       "IngressRoute",
			"metadata": map[string]any{
				"name":      app.Name,
				"namespace": app.Namespace,
				"labels":    map[string]any{"app": app.Name},
			},
			"spec": map[string]any{
				"entryPoints": []any{"websecure"},
				"routes": []any{
					map[string]any{
						"kind":  "Rule",
						"match": "Host(`" + app.Domain + "`)",
						"services": []any{
							map[string]any{
								"name": app.Name,
								"port": int64(servicePort),
							},
						},
					},
				},
				"tls": map[string]any{
					"certResolver": config.ACMEResolverName,
				},
			},
		},
	}
}
