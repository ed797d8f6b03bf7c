package ui

import (
	"fmt"
	"html/template"
)

// RenderPage renders a complete HTML page with the header above the content
func RenderPage(title, header, content string) string {
	return PageStart(title) + header + `<main class="suite-content">` + content + `</main>` + PageEnd()
}

// PageStart generates the HTML head with Bootstrap CDN
func PageStart(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-T3c6CoIi6uLrA9TneNEoa7RxnatzjcDSCmG1MXxSR1GAsXEV/Dwwykc2MPK8M2HN" crossorigin="anonymous">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css">
    <style>%s</style>
</head>
<body>`, template.HTMLEscapeString(title), GetStyles())
}

// PageEnd generates the HTML footer with scripts
func PageEnd() string {
	return fmt.Sprintf(`
    <script>%s</script>
</body>
</html>`, GetScripts())
}

// CardStart returns the opening tags for a card with header
func CardStart(title, icon string) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h4 class="mb-0"><i class="bi bi-%s me-2"></i>%s</h4>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title))
}

// CardEnd returns the closing tags for a card
func CardEnd() string {
	return `    </div>
</div>`
}
