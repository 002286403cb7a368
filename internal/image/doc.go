// Package image produces the docserver container image: compiling the
// release binary, staging the build context, and building a uniquely
// tagged image with the local container tool.
package image
