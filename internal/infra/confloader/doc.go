// Package confloader provides the configuration loading mechanism.
//
// It uses koanf to merge configuration from multiple sources with
// priority Env > File > Default, and offers an fsnotify-based watcher
// for reacting to configuration file changes at runtime.
package confloader
