package config

const configTemplate = `# tock configuration file

# Frames per second for the countdown display (1-120)
fps: 30

# Desktop notification when the timer expires
notify: true

# Let the readout drift and bounce around the terminal
dvd: false

# Observability settings
log_level: info  # debug, info, warn, error
`
