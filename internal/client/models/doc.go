// Package models defines client-side data models used by the Software Slayer
// CLI: the signed-in user and learning items grouped into sections.
package models
