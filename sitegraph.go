// Package sitegraph discovers the structure of a website by crawling it,
// models that structure as a directed graph with a discovery hierarchy and
// per-page path sets, classifies the site's purpose from its text, and
// synthesizes behavioral test scenarios from the resulting model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package sitegraph
