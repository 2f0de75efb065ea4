// Package process cleans up the headless browser launched for PDF output.
package process
