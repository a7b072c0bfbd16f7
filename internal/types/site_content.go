// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// SiteContent maps a section id to the section's payload
type SiteContent map[string]SectionPayload

// MarshalJSON encodes every payload as a typed envelope
func (c SiteContent) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	wire := make(map[string]json.RawMessage, len(c))
	for id, payload := range c {
		if payload == nil {
			wire[id] = json.RawMessage("null")
			continue
		}
		raw, err := MarshalPayload(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal content %s: %w", id, err)
		}
		wire[id] = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes enveloped payloads keyed by section id
func (c *SiteContent) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire == nil {
		*c = nil
		return nil
	}
	out := make(SiteContent, len(wire))
	for id, raw := range wire {
		if string(raw) == "null" {
			out[id] = nil
			continue
		}
		payload, err := UnmarshalPayload(raw)
		if err != nil {
			return fmt.Errorf("failed to unmarshal content %s: %w", id, err)
		}
		out[id] = payload
	}
	*c = out
	return nil
}
