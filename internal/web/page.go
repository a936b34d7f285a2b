package web

import (
	"html/template"
	"io"
)

// PublicEnv is the configuration exposed to the page.
type PublicEnv struct {
	Network   string
	NodeURL   string
	FaucetURL string
	IPFSURL   string
}

type pageData struct {
	Title  string
	Status string
	State  string
	Env    PublicEnv
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Roboto, Helvetica, Arial, sans-serif; margin: 0; }
main { max-width: 1200px; margin: 32px auto; padding: 0 24px; }
h1 { font-size: 2.125rem; font-weight: 400; margin-bottom: 0.35em; }
</style>
</head>
<body>
<main data-network="{{.Env.Network}}" data-node-url="{{.Env.NodeURL}}" data-faucet-url="{{.Env.FaucetURL}}" data-ipfs-url="{{.Env.IPFSURL}}">
<h1>{{.Title}}</h1>
<p id="aptos-status" data-state="{{.State}}">{{.Status}}</p>
</main>
</body>
</html>
`))

// Page renders the status page for a view.
type Page struct {
	view *StatusView
	env  PublicEnv
}

// NewPage creates a page bound to a view.
func NewPage(view *StatusView, env PublicEnv) *Page {
	return &Page{view: view, env: env}
}

// Render writes the page HTML.
func (p *Page) Render(w io.Writer) error {
	state := p.view.State()
	return pageTemplate.Execute(w, pageData{
		Title:  "NFT Platform",
		Status: StatusPrefix + state.Label(),
		State:  state.String(),
		Env:    p.env,
	})
}
