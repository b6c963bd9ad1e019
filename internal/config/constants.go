package config

import "time"

// Base application details
const AppName = "modal"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "modal.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = false
const BackupOnSave = false
const ShowLineNumbers = true
