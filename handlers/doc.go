// Package handlers contains the site's controllers and error handling.
package handlers
