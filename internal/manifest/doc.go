// Package manifest builds the docserver Kubernetes manifest set: the
// PersistentVolumeClaim, Service, Deployment, and Traefik IngressRoute.
//
// Objects are constructed typed and rendered to a multi-document YAML
// stream. Application is left to the k8s package's create-or-update apply,
// so rendering stays a pure function of configuration and image tag.
package manifest
