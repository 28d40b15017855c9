// Package main provides the entry point of madrasa-site, the content API of the madrasa website.
// It serves the public site content (hero, about, branding, notices, gallery and hero slides)
// as JSON through fiber and lets a logged in admin edit it. Content is persisted with gorm
// in sqlite, mysql or postgres, uploads are relayed to Cloudinary.
package main
