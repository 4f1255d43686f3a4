// Package modules contains the site's self-contained features.
//
// Each subdirectory implements module.Module. The active set is listed in
// internal/app.NewModules and booted by the server at startup.
package modules
