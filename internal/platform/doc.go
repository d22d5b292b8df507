// Package platform contains OS integration glue: filesystem helpers, image
// format sniffing, file manager reveal, and config file watching.
package platform
