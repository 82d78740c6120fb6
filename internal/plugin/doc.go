// Package plugin holds the plugin registry.
//
// Every interaction feature is a plugin: selection, transform handles,
// context menus, text editing, the creation tools. A plugin declares
// its pointer and keyboard handlers, its shortcuts, and the plugins it
// depends on. The registry keeps insertion order, which is the base
// order for event dispatch, and contributes or withdraws a plugin's
// shortcuts as it is enabled or disabled.
//
// Enabling a plugin whose dependencies are missing or disabled fails
// and is logged; the plugin simply stays off.
package plugin
