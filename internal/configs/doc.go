// Package configs loads and saves user settings for the pixelock CLI.
//
// Settings live in a single TOML file under the user config directory
// (~/.config/pixelock/settings.toml on Linux) and cover presentation
// concerns only: the default output directory for generated images and
// whether previously generated images are kept when a new one is made.
//
// The cryptographic parameters (salt, iteration count, cipher) are fixed
// constants in the crypto package and are intentionally not configurable:
// images must stay decodable with nothing but their passphrase.
package configs
