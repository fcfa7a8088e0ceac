// Package internal provides shared utilities for server subpackages.
package internal

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/umputun/toggler/app/enum"
)

// NormalizeTrigger normalizes a trigger name by trimming spaces and slashes and lowering the case.
func NormalizeTrigger(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, "/")
	return strings.ToLower(name)
}

// TriggerFromPath parses the {trigger} path value of the request.
func TriggerFromPath(r *http.Request) (enum.Trigger, error) {
	name := NormalizeTrigger(r.PathValue("trigger"))
	if name == "" {
		return enum.Trigger{}, fmt.Errorf("trigger is required")
	}
	t, err := enum.ParseTrigger(name)
	if err != nil {
		return enum.Trigger{}, fmt.Errorf("unknown trigger %q", name)
	}
	return t, nil
}
