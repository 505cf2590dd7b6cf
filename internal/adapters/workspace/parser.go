package workspace

import (
	"bufio"
	"strings"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/zerr"
)

const cloakedMarker = "(cloaked)"

// noWorkspaceMarkers are fragments of tf messages that mean the path has no workspace.
var noWorkspaceMarkers = []string{
	"unable to determine the workspace",
	"workspace could not be determined",
	"could not be found",
	"is not a workspace",
	"no workspace",
	"no working folder mapping",
}

// isNoWorkspace reports whether tf output states that no workspace encloses the path.
func isNoWorkspace(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range noWorkspaceMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseWorkfold parses the output of "tf workfold".
//
//	===============================================
//	Workspace : ws1 (dev)
//	Collection: https://dev.azure.com/org/
//	 $/Project: /home/dev/project
//	 (cloaked) $/Project/bin:
func parseWorkfold(output string) (*domain.Workspace, error) {
	ws := &domain.Workspace{}
	sawHeader := false

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.Trim(trimmed, "=") == "":
			continue
		case strings.HasPrefix(trimmed, "Workspace"):
			name, owner := parseWorkspaceHeader(headerValue(trimmed))
			ws.Name, ws.Owner = name, owner
			sawHeader = true
		case strings.HasPrefix(trimmed, "Collection"):
			ws.Collection = headerValue(trimmed)
		case strings.HasPrefix(trimmed, cloakedMarker):
			server, _, err := splitMapping(strings.TrimSpace(strings.TrimPrefix(trimmed, cloakedMarker)))
			if err != nil {
				return nil, zerr.With(err, "line", line)
			}
			ws.Mappings = append(ws.Mappings, domain.Mapping{ServerPath: server, Cloaked: true})
		case strings.HasPrefix(trimmed, "$/"):
			server, local, err := splitMapping(trimmed)
			if err != nil {
				return nil, zerr.With(err, "line", line)
			}
			ws.Mappings = append(ws.Mappings, domain.Mapping{ServerPath: server, LocalPath: local})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceParseFailed.Error())
	}

	if !sawHeader {
		return nil, zerr.With(domain.ErrWorkspaceParseFailed, "reason", "missing workspace header")
	}
	return ws, nil
}

// headerValue returns the text after the first colon of a "Key : value" line.
func headerValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}

// parseWorkspaceHeader splits "name (owner)" into its parts.
func parseWorkspaceHeader(value string) (name, owner string) {
	open := strings.LastIndex(value, "(")
	if open < 0 || !strings.HasSuffix(value, ")") {
		return value, ""
	}
	return strings.TrimSpace(value[:open]), value[open+1 : len(value)-1]
}

// splitMapping splits "$/server/path: local" on the colon that ends the server path.
// Server paths cannot contain a colon, so the first one is the separator even when the
// local path carries a drive letter.
func splitMapping(s string) (server, local string, err error) {
	server, local, ok := strings.Cut(s, ":")
	if !ok || !strings.HasPrefix(server, "$/") {
		return "", "", zerr.With(domain.ErrWorkspaceParseFailed, "reason", "malformed mapping")
	}
	return strings.TrimSpace(server), strings.TrimSpace(local), nil
}
