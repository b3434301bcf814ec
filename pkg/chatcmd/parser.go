package chatcmd

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// CommandType is the outcome of parsing a chat command.
type CommandType string

const (
	TypeCreate  CommandType = "create"
	TypeUnknown CommandType = "unknown"
)

// createPattern is the only supported grammar: "create <count> <contentType> for <subject>".
// It is unanchored and case-insensitive; anything that does not match is unknown.
var createPattern = regexp.MustCompile(`(?i)create\s+(\d+)\s+(.*?)\s+for\s+(.*)`)

// ParsedCommand contains the structured form of a command.
// Create fields are omitted for unknown commands and vice versa.
type ParsedCommand struct {
	Type            CommandType `json:"type"`
	Count           int         `json:"count,omitempty"`
	ContentType     string      `json:"contentType,omitempty"`
	Subject         string      `json:"subject,omitempty"`
	OriginalCommand string      `json:"originalCommand,omitempty"`
	BrandId         uuid.UUID   `json:"brandId"`
}

// Parse matches command against the create grammar.
func Parse(command string, brandId uuid.UUID) *ParsedCommand {
	match := createPattern.FindStringSubmatch(command)
	if match != nil {
		// A count too large for int is treated as no match.
		if count, err := strconv.Atoi(match[1]); err == nil {
			return &ParsedCommand{
				Type:        TypeCreate,
				Count:       count,
				ContentType: match[2],
				Subject:     match[3],
				BrandId:     brandId,
			}
		}
	}

	return &ParsedCommand{
		Type:            TypeUnknown,
		OriginalCommand: command,
		BrandId:         brandId,
	}
}
