// Package nginx renders and activates the reverse-proxy site for the
// deployment.
//
// The server block is a pure function of the deployment record and the
// detected runtime: re-rendering with identical inputs produces
// byte-identical output, so installs overwrite instead of accumulating.
package nginx

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// SiteParams are the inputs of the rendered server block.
type SiteParams struct {
	// Domain is the server_name.
	Domain string

	// Root is the deployment tree served by the site.
	Root string

	// WebhookSecret is the exact path routed to the entry script.
	WebhookSecret string

	// EntryScript handles webhook calls, relative to Root.
	EntryScript string

	// Socket is the php-fpm unix socket dynamic requests are passed to.
	Socket string

	// MaxBodySize caps request bodies. Empty selects the 20M default.
	MaxBodySize string
}

var siteTemplate = template.Must(
	template.New("site").Funcs(sprig.TxtFuncMap()).Parse(siteTemplateText),
)

const siteTemplateText = `server {
    listen 80;
    listen [::]:80;
    server_name {{ .Domain }};

    root {{ .Root }};
    index {{ .EntryScript }} index.html;

    client_max_body_size {{ .MaxBodySize | default "20M" }};

    location = /{{ .WebhookSecret }} {
        include snippets/fastcgi-php.conf;
        fastcgi_param SCRIPT_FILENAME {{ .Root }}/{{ .EntryScript }};
        fastcgi_pass unix:{{ .Socket }};
    }

    location ~ \.php$ {
        include snippets/fastcgi-php.conf;
        fastcgi_pass unix:{{ .Socket }};
    }

    location / {
        try_files $uri $uri/ =404;
    }
}
`

// Render produces the server block for params.
func Render(params SiteParams) ([]byte, error) {
	var buf bytes.Buffer
	if err := siteTemplate.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("failed to render site: %w", err)
	}
	return buf.Bytes(), nil
}
