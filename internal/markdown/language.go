package markdown

import (
	"path"
	"strings"
)

// LanguageText is the highlighting tag of unrecognised files.
const LanguageText = "text"

var languageByExtension = map[string]string{
	"js":         "javascript",
	"jsx":        "javascript",
	"mjs":        "javascript",
	"cjs":        "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"py":         "python",
	"java":       "java",
	"cpp":        "cpp",
	"cc":         "cpp",
	"cxx":        "cpp",
	"hpp":        "cpp",
	"c":          "c",
	"h":          "c",
	"css":        "css",
	"html":       "html",
	"htm":        "html",
	"json":       "json",
	"md":         "markdown",
	"markdown":   "markdown",
	"yml":        "yaml",
	"yaml":       "yaml",
	"xml":        "xml",
	"sql":        "sql",
	"sh":         "bash",
	"bash":       "bash",
	"dockerfile": "dockerfile",
}

// Language maps the extension of filePath to a highlighting tag.
func Language(filePath string) string {
	base := path.Base(strings.ReplaceAll(filePath, "\\", "/"))

	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return LanguageText
	}

	if lang, ok := languageByExtension[strings.ToLower(base[i+1:])]; ok {
		return lang
	}

	return LanguageText
}
