package config

import "time"

// Base application details
const AppName = "daub"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "daub.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults
const DefaultCanvasWidth = 32
const DefaultCanvasHeight = 16
const DefaultLayers = 2
const MaxCanvasSize = 256
const MaxLayers = 8

// History and editor defaults
const DefaultGrouping = true
const SystemClipboard = false
