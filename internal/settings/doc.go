// Package settings holds the runtime configuration of the settings
// application.
//
// A [Store] is seeded from a compiled-in baseline ([Defaults]) and overlaid
// at startup by the URI-encoded JSON payload the settings server embeds in
// the page (`<meta name="fxa-config" content="...">`). The store is an
// explicit object owned by the composition root; there is no package-level
// configuration state.
//
// A store is either in [StateDefault] or in [StateOverridden]. [Store.Update]
// and [Store.ReadConfigMeta] move it to the overridden state, [Store.Reset]
// moves it back.
package settings
