package i18n

// Translations is the string table for one locale. The JSON layout matches
// assets/locales/<code>.json.
type Translations struct {
	App      AppTranslations      `json:"app"`
	Sidebar  SidebarTranslations  `json:"sidebar"`
	Home     HomeTranslations     `json:"home"`
	System   SystemTranslations   `json:"system"`
	Actions  ActionTranslations   `json:"actions"`
	Update   UpdateTranslations   `json:"update"`
	Drivers  DriversTranslations  `json:"drivers"`
	Software SoftwareTranslations `json:"software"`
	Settings SettingsTranslations `json:"settings"`
	About    AboutTranslations    `json:"about"`
	Notify   NotifyTranslations   `json:"notify"`
}

type AppTranslations struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type SidebarTranslations struct {
	Welcome  string `json:"welcome"`
	Home     string `json:"home"`
	Update   string `json:"update"`
	Drivers  string `json:"drivers"`
	Software string `json:"software"`
}

type HomeTranslations struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Website        string `json:"website"`
	Docs           string `json:"docs"`
	Forum          string `json:"forum"`
	Github         string `json:"github"`
	LinksTitle     string `json:"links_title"`
	AutostartLabel string `json:"autostart_label"`
}

type SystemTranslations struct {
	Title    string `json:"title"`
	OS       string `json:"os"`
	Desktop  string `json:"desktop"`
	Kernel   string `json:"kernel"`
	Memory   string `json:"memory"`
	CPU      string `json:"cpu"`
	Hostname string `json:"hostname"`
	Session  string `json:"session"`
	Disk     string `json:"disk"`
}

// ActionTranslations labels the quick actions. Opened and OpenFailed contain
// a {name} placeholder.
type ActionTranslations struct {
	Title              string `json:"title"`
	CheckUpdates       string `json:"check_updates"`
	CheckUpdatesDesc   string `json:"check_updates_desc"`
	Checking           string `json:"checking"`
	UpdateSystem       string `json:"update_system"`
	UpdateSystemDesc   string `json:"update_system_desc"`
	SoftwareCenter     string `json:"software_center"`
	SoftwareCenterDesc string `json:"software_center_desc"`
	SystemSettings     string `json:"system_settings"`
	SystemSettingsDesc string `json:"system_settings_desc"`
	Opened             string `json:"opened"`
	OpenFailed         string `json:"open_failed"`
}

// UpdateTranslations holds update-check strings. StatusNeedUpdate may contain
// a {count} placeholder.
type UpdateTranslations struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	StatusUnknown    string `json:"status_unknown"`
	StatusUptodate   string `json:"status_uptodate"`
	StatusNeedUpdate string `json:"status_need_update"`
	BtnUpdate        string `json:"btn_update"`
	LogTitle         string `json:"log_title"`
	StatusStarted    string `json:"status_started"`
	Success          string `json:"success"`
	Error            string `json:"error"`
	NoManager        string `json:"no_manager"`
}

type DriversTranslations struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Detecting       string `json:"detecting"`
	Detected        string `json:"detected"`
	UnknownGPU      string `json:"unknown_gpu"`
	DriverInstalled string `json:"driver_installed"`
	DriverNotFound  string `json:"driver_not_found"`
	DriverCurrent   string `json:"driver_current"`
	BtnLaunch       string `json:"btn_launch"`
	SessionType     string `json:"session_type"`
}

type SoftwareTranslations struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BtnInstall  string `json:"btn_install"`
}

type SettingsTranslations struct {
	Title         string `json:"title"`
	Language      string `json:"language"`
	Autostart     string `json:"autostart"`
	AutostartDesc string `json:"autostart_desc"`
	Theme         string `json:"theme"`
	Saved         string `json:"saved"`
	ConfigFile    string `json:"config_file"`
}

type AboutTranslations struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	License     string `json:"license"`
	Credits     string `json:"credits"`
	BuiltWith   string `json:"built_with"`
}

// NotifyTranslations are desktop notification texts. UpdatesBody contains a
// {count} placeholder.
type NotifyTranslations struct {
	UpdatesTitle string `json:"updates_title"`
	UpdatesBody  string `json:"updates_body"`
	Success      string `json:"success"`
	Error        string `json:"error"`
}

// fallbackEN is the built-in English table. Every other locale is decoded on
// top of a copy of it, so keys a locale file omits stay in English.
func fallbackEN() Translations {
	return Translations{
		App: AppTranslations{
			Title:   "Welcome to Linux",
			Version: "v2.0.0",
		},
		Sidebar: SidebarTranslations{
			Welcome:  "Welcome",
			Home:     "Home",
			Update:   "Update System",
			Drivers:  "Drivers",
			Software: "Software",
		},
		Home: HomeTranslations{
			Title:          "Welcome to Your System",
			Description:    "Essential tools to configure and prepare your computer.",
			Website:        "Website",
			Docs:           "Documentation",
			Forum:          "Community Forum",
			Github:         "Source Code (GitHub)",
			LinksTitle:     "Useful Links",
			AutostartLabel: "Show at startup",
		},
		System: SystemTranslations{
			Title:    "System Information",
			OS:       "Operating System",
			Desktop:  "Desktop Environment",
			Kernel:   "Kernel",
			Memory:   "Memory",
			CPU:      "CPU",
			Hostname: "Hostname",
			Session:  "Session Type",
			Disk:     "Disk",
		},
		Actions: ActionTranslations{
			Title:              "Quick Actions",
			CheckUpdates:       "Check for Updates",
			CheckUpdatesDesc:   "Ask the package manager for pending updates",
			Checking:           "Checking...",
			UpdateSystem:       "Update System",
			UpdateSystemDesc:   "Check and install available updates",
			SoftwareCenter:     "Software Center",
			SoftwareCenterDesc: "Browse and install applications",
			SystemSettings:     "System Settings",
			SystemSettingsDesc: "Configure your system",
			Opened:             "{name} opened",
			OpenFailed:         "Failed to open {name}",
		},
		Update: UpdateTranslations{
			Title:            "System Updates",
			Description:      "Keep your system up to date",
			StatusUnknown:    "Status: Waiting for check...",
			StatusUptodate:   "System is up to date!",
			StatusNeedUpdate: "{count} update(s) available",
			BtnUpdate:        "Check for Updates",
			LogTitle:         "Process Log",
			StatusStarted:    "Starting update process...",
			Success:          "Update completed successfully!",
			Error:            "Update check failed",
			NoManager:        "No supported package manager found",
		},
		Drivers: DriversTranslations{
			Title:           "Hardware Drivers",
			Description:     "Manage hardware drivers for optimal performance",
			Detecting:       "Detecting hardware...",
			Detected:        "Detected GPU:",
			UnknownGPU:      "Graphics card not detected",
			DriverInstalled: "Installed Driver:",
			DriverNotFound:  "Driver Not Installed",
			DriverCurrent:   "Active",
			BtnLaunch:       "Open Settings",
			SessionType:     "Session Type",
		},
		Software: SoftwareTranslations{
			Title:       "Recommended Software",
			Description: "Install popular applications to get started quickly",
			BtnInstall:  "Install",
		},
		Settings: SettingsTranslations{
			Title:         "Settings",
			Language:      "Language",
			Autostart:     "Launch at login",
			AutostartDesc: "Automatically start Ro-Start when you log in",
			Theme:         "Theme",
			Saved:         "Settings saved",
			ConfigFile:    "Config File",
		},
		About: AboutTranslations{
			Title:       "About",
			Description: "A welcome screen for your Linux desktop",
			License:     "License",
			Credits:     "Contributors",
			BuiltWith:   "Built with",
		},
		Notify: NotifyTranslations{
			UpdatesTitle: "Updates Available",
			UpdatesBody:  "{count} update(s) are ready to install",
			Success:      "Success",
			Error:        "Error",
		},
	}
}
