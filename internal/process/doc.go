// Package process stops the headless browser started for PDF export.
package process
