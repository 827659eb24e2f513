package naming

import (
	"regexp"
	"strings"
)

var versionSegmentRe = regexp.MustCompile(`^[Vv][0-9]+(\.[0-9]+)*$`)

// ResourceNamesFromURL derives the hierarchical resource names of a URL
// template, e.g. "/v2.1/servers/{id}/os-volume_attachments" yields
// ["server", "volume_attachment"].
func ResourceNamesFromURL(path string) []string {
	var elements []string
	for _, el := range strings.Split(path, "/") {
		if el != "" {
			elements = append(elements, el)
		}
	}
	if len(elements) > 0 && versionSegmentRe.MatchString(elements[0]) {
		elements = elements[1:]
	}

	var names []string
	for _, el := range elements {
		if strings.Contains(el, "{") {
			continue
		}
		names = append(names, strings.TrimPrefix(singular(strings.ReplaceAll(el, "-", "_")), "os_"))
	}

	if len(names) > 1 {
		last := names[len(names)-1]
		if last == "action" || last == "detail" ||
			strings.Contains(last, "add") || strings.Contains(last, "remove") || strings.Contains(last, "update") {
			names = names[:len(names)-1]
		}
	}
	if len(elements) >= 3 && elements[len(elements)-3] == "actions" && len(names) >= 2 {
		names = names[:len(names)-2]
	}
	if len(names) == 0 {
		return []string{"version"}
	}

	if strings.HasPrefix(path, "/v2/schemas/") {
		names[len(names)-1] = elements[len(elements)-1]
	}
	if strings.HasPrefix(path, "/v2/images") &&
		(strings.HasSuffix(path, "/actions/deactivate") || strings.HasSuffix(path, "/actions/reactivate")) {
		names = []string{"image"}
	}
	if len(names) == 2 && names[0] == "volume_transfer" && names[1] == "accept" {
		names = []string{"volume_transfer"}
	}
	return names
}

// ResourceName joins ResourceNamesFromURL with "/".
func ResourceName(path string) string {
	return strings.Join(ResourceNamesFromURL(path), "/")
}

func singular(el string) string {
	switch {
	case strings.HasSuffix(el, "ies"):
		return strings.TrimSuffix(el, "ies") + "y"
	case strings.HasSuffix(el, "sses"):
		return strings.TrimSuffix(el, "es")
	case strings.HasSuffix(el, "s") &&
		!strings.HasSuffix(el, "dns") &&
		!strings.HasSuffix(el, "access") &&
		el != "qos" &&
		el != "details":
		return strings.TrimSuffix(el, "s")
	}
	return el
}
