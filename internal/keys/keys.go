// internal/keys/keys.go
//
// System setting key names.
//
// Context
// -------
// Flat namespace of the device settings this service gates.  Key strings
// are the wire/storage identifiers; the Go constants exist so the rule
// table and its tests never spell a raw key twice.  A handful of legacy
// keys keep historical spellings ("dtmf_tone", "lockscreen.disabled",
// upper-case SIP_* flags) that no longer match their constant names.

package keys

// Power, buttons, and telephony behavior.
const (
	StayOnWhilePluggedIn    = "stay_on_while_plugged_in"
	EndButtonBehavior       = "end_button_behavior"
	AdvancedSettings        = "advanced_settings"
	DTMFToneWhenDialing     = "dtmf_tone"
	DTMFToneTypeWhenDialing = "dtmf_tone_type"
	HearingAid              = "hearing_aid"
	TTYMode                 = "tty_mode"
	SIPReceiveCalls         = "sip_receive_calls"
	SIPCallOptions          = "sip_call_options"
	SIPAlways               = "SIP_ALWAYS"
	SIPAddressOnly          = "SIP_ADDRESS_ONLY"
	SIPAskMeEachTime        = "SIP_ASK_ME_EACH_TIME"
)

// Wi-Fi static network configuration.
const (
	WifiUseStaticIP   = "wifi_use_static_ip"
	WifiStaticIP      = "wifi_static_ip"
	WifiStaticGateway = "wifi_static_gateway"
	WifiStaticNetmask = "wifi_static_netmask"
	WifiStaticDNS1    = "wifi_static_dns1"
	WifiStaticDNS2    = "wifi_static_dns2"
)

// Bluetooth.
const (
	BluetoothDiscoverability        = "bluetooth_discoverability"
	BluetoothDiscoverabilityTimeout = "bluetooth_discoverability_timeout"
)

// Display and brightness.
const (
	FontScale                              = "font_scale"
	DimScreen                              = "dim_screen"
	DisplayColorMode                       = "display_color_mode"
	DisplayColorModeVendorHint             = "display_color_mode_vendor_hint"
	ScreenOffTimeout                       = "screen_off_timeout"
	ScreenBrightnessForVR                  = "screen_brightness_for_vr"
	ScreenBrightnessMode                   = "screen_brightness_mode"
	ScreenAutoBrightnessAdj                = "screen_auto_brightness_adj"
	AdaptiveSleep                          = "adaptive_sleep"
	WallpaperActivity                      = "wallpaper_activity"
	AccelerometerRotation                  = "accelerometer_rotation"
	UserRotation                           = "user_rotation"
	HideRotationLockToggleForAccessibility = "hide_rotation_lock_toggle_for_accessibility"
	EnableFloatingRotationButton           = "enable_floating_rotation_button"
	WindowOrientationListenerLog           = "window_orientation_listener_log"
	PointerLocation                        = "pointer_location"
	PointerSpeed                           = "pointer_speed"
	ShowTouches                            = "show_touches"
	ForceFullscreenCutoutApps              = "force_fullscreen_cutout_apps"
	BackGestureHeight                      = "back_gesture_height"
	DoubleTapSleepGesture                  = "double_tap_sleep_gesture"
	DoubleTapSleepLockscreen               = "double_tap_sleep_lockscreen"
)

// Audio, ringer, and vibration.
const (
	ModeRingerStreamsAffected     = "mode_ringer_streams_affected"
	MuteStreamsAffected           = "mute_streams_affected"
	VibrateOn                     = "vibrate_on"
	ApplyRampingRinger            = "apply_ramping_ringer"
	VibrateInputDevices           = "vibrate_input_devices"
	VibrateInSilent               = "vibrate_in_silent"
	VibrateWhenRinging            = "vibrate_when_ringing"
	VibrateOnConnect              = "vibrate_on_connect"
	VibrateOnCallWaiting          = "vibrate_on_callwaiting"
	VibrateOnDisconnect           = "vibrate_on_disconnect"
	MasterMono                    = "master_mono"
	MasterBalance                 = "master_balance"
	NotificationsUseRingVolume    = "notifications_use_ring_volume"
	SoundEffectsEnabled           = "sound_effects_enabled"
	PowerSoundsEnabled            = "power_sounds_enabled"
	DockSoundsEnabled             = "dock_sounds_enabled"
	LockscreenSoundsEnabled       = "lockscreen_sounds_enabled"
	HapticFeedbackEnabled         = "haptic_feedback_enabled"
	Ringtone                      = "ringtone"
	NotificationSound             = "notification_sound"
	AlarmAlert                    = "alarm_alert"
	MediaButtonReceiver           = "media_button_receiver"
	VolumeDialogTimeout           = "volume_dialog_timeout"
	VolumeKeyCursorControl        = "volume_key_cursor_control"
	VolumeButtonMusicControl      = "volume_button_music_control"
	VolumeButtonMusicControlDelay = "volume_button_music_control_delay"
	VolumeButtonQuickMute         = "volume_button_quick_mute"
	VolumeButtonQuickMuteDelay    = "volume_button_quick_mute_delay"
	VolumePanelOnLeft             = "volume_panel_on_left"
	VolumePanelOnLeftLand         = "volume_panel_on_left_land"
)

// Vibration intensity levels and patterns.
const (
	AlarmVibrationIntensity            = "alarm_vibration_intensity"
	MediaVibrationIntensity            = "media_vibration_intensity"
	NotificationVibrationIntensity     = "notification_vibration_intensity"
	RingVibrationIntensity             = "ring_vibration_intensity"
	HapticFeedbackIntensity            = "haptic_feedback_intensity"
	HardwareHapticFeedbackIntensity    = "hardware_haptic_feedback_intensity"
	RingtoneVibrationPattern           = "ringtone_vibration_pattern"
	CustomRingtoneVibrationPattern     = "custom_ringtone_vibration_pattern"
	NotificationVibrationPattern       = "notification_vibration_pattern"
	CustomNotificationVibrationPattern = "custom_notification_vibration_pattern"
)

// Text input.
const (
	TextAutoReplace   = "auto_replace"
	TextAutoCaps      = "auto_caps"
	TextAutoPunctuate = "auto_punctuate"
	TextShowPassword  = "show_password"
)

// Clock and setup.
const (
	AutoTime               = "auto_time"
	AutoTimeZone           = "auto_time_zone"
	Time1224               = "time_12_24"
	NextAlarmFormatted     = "next_alarm_formatted"
	SetupWizardHasRun      = "setup_wizard_has_run"
	ShowWebSuggestions     = "show_web_suggestions"
	ShowGTalkServiceStatus = "SHOW_GTALK_SERVICE_STATUS"
	EggMode                = "egg_mode"
)

// Lockscreen and keyguard.
const (
	LockscreenDisabled    = "lockscreen.disabled"
	LockToAppEnabled      = "lock_to_app_enabled"
	LockscreenBatteryInfo = "lockscreen_battery_info"
	KeyguardMediaArt      = "keyguard_media_art"
	KeyguardQuickToggles  = "keyguard_quick_toggles"
)

// Status bar, quick settings, and navigation.
const (
	ShowBatteryPercent              = "status_bar_show_battery_percent"
	ShowBatteryPercentInside        = "show_battery_percent_inside"
	StatusBarBatteryStyle           = "status_bar_battery_style"
	StatusBarBrightnessControl      = "status_bar_brightness_control"
	StatusbarClockPosition          = "statusbar_clock_position"
	StatusBarNotifCount             = "status_bar_notif_count"
	QSFooterTextShow                = "qs_footer_text_show"
	QSFooterTextString              = "qs_footer_text_string"
	QSFooterServicesShow            = "qs_footer_services_show"
	QSShowBatteryEstimate           = "qs_show_battery_estimate"
	NavigationBarInverse            = "navigation_bar_inverse"
	NavbarLayoutViews               = "navbar_layout_views"
	NetworkTrafficState             = "network_traffic_state"
	NetworkTrafficType              = "network_traffic_type"
	NetworkTrafficAutohideThreshold = "network_traffic_autohide_threshold"
	NetworkTrafficArrow             = "network_traffic_arrow"
	NetworkTrafficFontSize          = "network_traffic_font_size"
	NetworkTrafficViewLocation      = "network_traffic_view_location"
)

// Notifications and pulse light.
const (
	NotificationLightPulse     = "notification_light_pulse"
	NotificationHeaders        = "notification_headers"
	NotificationPulse          = "notification_pulse"
	AODNotificationPulse       = "aod_notification_pulse"
	NotificationPulseColorMode = "notification_pulse_color_mode"
	NotificationPulseColor     = "notification_pulse_color"
	NotificationPulseRepeats   = "notification_pulse_repeats"
	NotificationPulseDuration  = "notification_pulse_duration"
	DefaultNotificationTorch   = "default_notification_torch"
)

// Battery light.
const (
	BatteryLightEnabled         = "battery_light_enabled"
	BatteryLightAllowOnDND      = "battery_light_allow_on_dnd"
	BatteryLightLowBlinking     = "battery_light_low_blinking"
	BatteryLightLowColor        = "battery_light_low_color"
	BatteryLightMediumColor     = "battery_light_medium_color"
	BatteryLightFullColor       = "battery_light_full_color"
	BatteryLightReallyFullColor = "battery_light_reallyfull_color"
)

// Torch and flashlight.
const (
	FlashlightOnCall          = "flashlight_on_call"
	FlashlightOnCallIgnoreDND = "flashlight_on_call_ignore_dnd"
	FlashlightOnCallRate      = "flashlight_on_call_rate"
	TorchPowerButtonGesture   = "torch_power_button_gesture"
)

// Gaming mode.
const (
	GamingModeHeadsUp           = "gaming_mode_heads_up"
	GamingModeZen               = "gaming_mode_zen"
	GamingModeRinger            = "gaming_mode_ringer"
	GamingModeNavbar            = "gaming_mode_navbar"
	GamingModeHWButtons         = "gaming_mode_hw_buttons"
	GamingModeNightLight        = "gaming_mode_night_light"
	GamingModeBatterySchedule   = "gaming_mode_battery_schedule"
	GamingModeBrightnessEnabled = "gaming_mode_brightness_enabled"
	GamingModeBrightness        = "gaming_mode_brightness"
	GamingModeMediaEnabled      = "gaming_mode_media_enabled"
	GamingModeMedia             = "gaming_mode_media"
	GamingModeScreenOff         = "gaming_mode_screen_off"
)

// Miscellaneous platform toggles.
const (
	OmniAdvancedReboot = "omni_advanced_reboot"
)
