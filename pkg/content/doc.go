// Package content loads the static page copy shown by the site.
//
// Pages live in a single YAML document:
//
//	pages:
//	  about:
//	    title: About
//	    message: Your application description page.
//	    body: |
//	      We build **small** web apps.
//
// Body is markdown. It is rendered with goldmark (GitHub Flavored Markdown)
// and the resulting HTML is passed through bluemonday's UGC policy, so the
// stored [Page.Body] is safe to emit without escaping. Title and message are
// plain text; any markup in them is stripped.
package content
