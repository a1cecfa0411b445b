package asset

// DefaultSessionFSMConfig is the embedded session control-flow graph
const DefaultSessionFSMConfig = `
initial = "EnteringName"

# === Name entry (visited once per process) ===

[states.EnteringName]
transitions = [
    { trigger = "EventNameConfirm", target = "Menu", guard = "NameConfirmed" },
    { trigger = "Tick", target = "Menu", guard = "NameEntryDisabled" },
]

# === Menu ===

[states.Menu]
transitions = [
    { trigger = "EventMenuStart", target = "Playing" },
    { trigger = "EventMenuInstructions", target = "Instructions" },
    { trigger = "EventMenuShop", target = "UpgradeShop" },
    { trigger = "EventMenuQuit", target = "Quit" },
]

# --- Sub-screens share the back transition ---

[states.Screen]
transitions = [
    { trigger = "EventBack", target = "Menu" },
]

[states.Instructions]
parent = "Screen"

[states.UpgradeShop]
parent = "Screen"

# === Run ===

[states.Playing]
on_enter = [
    { action = "ResetWorld" },
]
on_update = [
    { action = "StepWorld" },
]
transitions = [
    { trigger = "EventShipDestroyed", target = "GameOver" },
]

[states.GameOver]
on_enter = [
    { action = "RecordHighScore" },
    { action = "ReportScore" },
]
on_update = [
    { action = "TickFeedback" },
]
transitions = [
    { trigger = "EventGameOverMenu", target = "Menu" },
]

[states.Quit]
`
