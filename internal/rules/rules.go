// internal/rules/rules.go
//
// The system settings rule table.
//
// Context
// -------
// One registration per gated key, assembled once at boot by Build() and
// handed to the store.  Rules come exclusively from the validate package's
// named primitives and constructors; no per-key logic is defined inline, so
// every rule shape in the table is covered by the validate tests.
//
// Absence (NULL) is invalid by default.  Keys that accept NULL say so
// explicitly with validate.OrAbsent.

package rules

import (
	"github.com/yanizio/settingsd/internal/keys"
	"github.com/yanizio/settingsd/internal/registry"
	"github.com/yanizio/settingsd/internal/validate"
)

// Charger types for StayOnWhilePluggedIn, a bitmask setting: zero or any
// union of these flag bits.
const (
	batteryPluggedAC       = 1
	batteryPluggedUSB      = 2
	batteryPluggedWireless = 4
)

// Display color modes: the framework range plus the vendor-specific range.
const (
	colorModeNatural   = 0
	colorModeAutomatic = 3
	vendorColorModeMin = 256
	vendorColorModeMax = 511
)

// Free-text settings with no known structure are capped rather than left
// unbounded.
const maxFreeTextLength = 1000

// Build assembles the full key→rule registry.  It fails if the table ever
// registers a key twice.
func Build() (*registry.Registry, error) {
	b := registry.NewBuilder()

	// Power, buttons, and telephony.
	b.Register(keys.StayOnWhilePluggedIn, validate.BitmaskMembership(
		batteryPluggedAC, batteryPluggedUSB, batteryPluggedWireless))
	b.Register(keys.EndButtonBehavior, validate.InclusiveIntegerRange(0, 3))
	b.Register(keys.AdvancedSettings, validate.Boolean)
	b.Register(keys.DTMFToneWhenDialing, validate.Boolean)
	b.Register(keys.DTMFToneTypeWhenDialing, validate.Boolean)
	b.Register(keys.HearingAid, validate.Boolean)
	b.Register(keys.TTYMode, validate.InclusiveIntegerRange(0, 3))
	b.Register(keys.SIPReceiveCalls, validate.Boolean)
	b.Register(keys.SIPCallOptions, validate.DiscreteValues("SIP_ALWAYS", "SIP_ADDRESS_ONLY"))
	b.Register(keys.SIPAlways, validate.Boolean)
	b.Register(keys.SIPAddressOnly, validate.Boolean)
	b.Register(keys.SIPAskMeEachTime, validate.Boolean)

	// Wi-Fi static network configuration.
	b.Register(keys.WifiUseStaticIP, validate.Boolean)
	b.Register(keys.WifiStaticIP, validate.LenientIPAddress)
	b.Register(keys.WifiStaticGateway, validate.LenientIPAddress)
	b.Register(keys.WifiStaticNetmask, validate.LenientIPAddress)
	b.Register(keys.WifiStaticDNS1, validate.LenientIPAddress)
	b.Register(keys.WifiStaticDNS2, validate.LenientIPAddress)

	// Bluetooth.
	b.Register(keys.BluetoothDiscoverability, validate.InclusiveIntegerRange(0, 2))
	b.Register(keys.BluetoothDiscoverabilityTimeout, validate.NonNegativeInteger)

	// Display and brightness.
	b.Register(keys.FontScale, validate.InclusiveFloatRange(0.25, 5.0))
	b.Register(keys.DimScreen, validate.Boolean)
	b.Register(keys.DisplayColorMode, validate.Any(
		validate.InclusiveIntegerRange(colorModeNatural, colorModeAutomatic),
		validate.InclusiveIntegerRange(vendorColorModeMin, vendorColorModeMax)))
	b.Register(keys.DisplayColorModeVendorHint, validate.AnyString)
	b.Register(keys.ScreenOffTimeout, validate.NonNegativeInteger)
	b.Register(keys.ScreenBrightnessForVR, validate.InclusiveIntegerRange(0, 255))
	b.Register(keys.ScreenBrightnessMode, validate.Boolean)
	b.Register(keys.ScreenAutoBrightnessAdj, validate.InclusiveFloatRange(-1, 1))
	b.Register(keys.AdaptiveSleep, validate.Boolean)
	b.Register(keys.WallpaperActivity, validate.All(
		validate.MaxLength(maxFreeTextLength), validate.ComponentName))
	b.Register(keys.AccelerometerRotation, validate.Boolean)
	b.Register(keys.UserRotation, validate.InclusiveIntegerRange(0, 3))
	b.Register(keys.HideRotationLockToggleForAccessibility, validate.Boolean)
	b.Register(keys.EnableFloatingRotationButton, validate.Boolean)
	b.Register(keys.WindowOrientationListenerLog, validate.Boolean)
	b.Register(keys.PointerLocation, validate.Boolean)
	b.Register(keys.PointerSpeed, validate.InclusiveFloatRange(-7, 7))
	b.Register(keys.ShowTouches, validate.Boolean)
	b.Register(keys.ForceFullscreenCutoutApps, validate.AnyString)
	b.Register(keys.BackGestureHeight, validate.InclusiveIntegerRange(0, 5))
	b.Register(keys.DoubleTapSleepGesture, validate.Boolean)
	b.Register(keys.DoubleTapSleepLockscreen, validate.Boolean)

	// Audio, ringer, and vibration.
	b.Register(keys.ModeRingerStreamsAffected, validate.NonNegativeInteger)
	b.Register(keys.MuteStreamsAffected, validate.NonNegativeInteger)
	b.Register(keys.VibrateOn, validate.Boolean)
	b.Register(keys.ApplyRampingRinger, validate.Boolean)
	b.Register(keys.VibrateInputDevices, validate.Boolean)
	b.Register(keys.VibrateInSilent, validate.Boolean)
	b.Register(keys.VibrateWhenRinging, validate.Boolean)
	b.Register(keys.VibrateOnConnect, validate.Boolean)
	b.Register(keys.VibrateOnCallWaiting, validate.Boolean)
	b.Register(keys.VibrateOnDisconnect, validate.Boolean)
	b.Register(keys.MasterMono, validate.Boolean)
	b.Register(keys.MasterBalance, validate.InclusiveFloatRange(-1, 1))
	b.Register(keys.NotificationsUseRingVolume, validate.Boolean)
	b.Register(keys.SoundEffectsEnabled, validate.Boolean)
	b.Register(keys.PowerSoundsEnabled, validate.Boolean)
	b.Register(keys.DockSoundsEnabled, validate.Boolean)
	b.Register(keys.LockscreenSoundsEnabled, validate.Boolean)
	b.Register(keys.HapticFeedbackEnabled, validate.Boolean)
	b.Register(keys.Ringtone, validate.URI)
	b.Register(keys.NotificationSound, validate.URI)
	b.Register(keys.AlarmAlert, validate.URI)
	b.Register(keys.MediaButtonReceiver, validate.ComponentName)
	b.Register(keys.VolumeDialogTimeout, validate.InclusiveIntegerRange(1, 7))
	b.Register(keys.VolumeKeyCursorControl, validate.InclusiveIntegerRange(0, 2))
	b.Register(keys.VolumeButtonMusicControl, validate.Boolean)
	b.Register(keys.VolumeButtonMusicControlDelay, validate.InclusiveIntegerRange(300, 2000))
	b.Register(keys.VolumeButtonQuickMute, validate.Boolean)
	b.Register(keys.VolumeButtonQuickMuteDelay, validate.InclusiveIntegerRange(300, 1500))
	b.Register(keys.VolumePanelOnLeft, validate.Boolean)
	b.Register(keys.VolumePanelOnLeftLand, validate.Boolean)

	// Vibration intensities and patterns.
	b.Register(keys.AlarmVibrationIntensity, validate.VibrationIntensity)
	b.Register(keys.MediaVibrationIntensity, validate.VibrationIntensity)
	b.Register(keys.NotificationVibrationIntensity, validate.VibrationIntensity)
	b.Register(keys.RingVibrationIntensity, validate.VibrationIntensity)
	b.Register(keys.HapticFeedbackIntensity, validate.VibrationIntensity)
	b.Register(keys.HardwareHapticFeedbackIntensity, validate.VibrationIntensity)
	b.Register(keys.RingtoneVibrationPattern, validate.InclusiveIntegerRange(0, 5))
	b.Register(keys.CustomRingtoneVibrationPattern, validate.CustomVibrationPattern)
	b.Register(keys.NotificationVibrationPattern, validate.InclusiveIntegerRange(0, 5))
	b.Register(keys.CustomNotificationVibrationPattern, validate.CustomVibrationPattern)

	// Text input.
	b.Register(keys.TextAutoReplace, validate.Boolean)
	b.Register(keys.TextAutoCaps, validate.Boolean)
	b.Register(keys.TextAutoPunctuate, validate.Boolean)
	b.Register(keys.TextShowPassword, validate.Boolean)

	// Clock and setup.
	b.Register(keys.AutoTime, validate.Boolean)
	b.Register(keys.AutoTimeZone, validate.Boolean)
	b.Register(keys.Time1224, validate.OrAbsent(validate.DiscreteValues("12", "24")))
	b.Register(keys.NextAlarmFormatted, validate.MaxLength(maxFreeTextLength))
	b.Register(keys.SetupWizardHasRun, validate.Boolean)
	b.Register(keys.ShowWebSuggestions, validate.Boolean)
	b.Register(keys.ShowGTalkServiceStatus, validate.Boolean)
	b.Register(keys.EggMode, validate.NonNegativeInteger)

	// Lockscreen and keyguard.
	b.Register(keys.LockscreenDisabled, validate.Boolean)
	b.Register(keys.LockToAppEnabled, validate.Boolean)
	b.Register(keys.LockscreenBatteryInfo, validate.Boolean)
	b.Register(keys.KeyguardMediaArt, validate.Boolean)
	b.Register(keys.KeyguardQuickToggles, validate.OrAbsent(validate.SegmentedList(
		2, "none", "home", "wallet", "qr", "camera", "flashlight")))

	// Status bar, quick settings, and navigation.
	b.Register(keys.ShowBatteryPercent, validate.Boolean)
	b.Register(keys.ShowBatteryPercentInside, validate.Boolean)
	b.Register(keys.StatusBarBatteryStyle, validate.InclusiveIntegerRange(0, 2))
	b.Register(keys.StatusBarBrightnessControl, validate.Boolean)
	b.Register(keys.StatusbarClockPosition, validate.InclusiveIntegerRange(0, 2))
	b.Register(keys.StatusBarNotifCount, validate.Boolean)
	b.Register(keys.QSFooterTextShow, validate.Boolean)
	b.Register(keys.QSFooterTextString, validate.AnyString)
	b.Register(keys.QSFooterServicesShow, validate.Boolean)
	b.Register(keys.QSShowBatteryEstimate, validate.Boolean)
	b.Register(keys.NavigationBarInverse, validate.Boolean)
	b.Register(keys.NavbarLayoutViews, validate.Any(
		validate.DiscreteValues("default"),
		validate.SegmentedList(3, "", "left", "right", "back", "home", "recent", "space")))
	b.Register(keys.NetworkTrafficState, validate.Boolean)
	b.Register(keys.NetworkTrafficType, validate.InclusiveIntegerRange(0, 4))
	b.Register(keys.NetworkTrafficAutohideThreshold, validate.AnyInteger)
	b.Register(keys.NetworkTrafficArrow, validate.Boolean)
	b.Register(keys.NetworkTrafficFontSize, validate.NonNegativeInteger)
	b.Register(keys.NetworkTrafficViewLocation, validate.Boolean)

	// Notifications and pulse light.
	b.Register(keys.NotificationLightPulse, validate.Boolean)
	b.Register(keys.NotificationHeaders, validate.Boolean)
	b.Register(keys.NotificationPulse, validate.Boolean)
	b.Register(keys.AODNotificationPulse, validate.Boolean)
	b.Register(keys.NotificationPulseColorMode, validate.InclusiveIntegerRange(0, 3))
	b.Register(keys.NotificationPulseColor, validate.AnyInteger)
	b.Register(keys.NotificationPulseRepeats, validate.AnyInteger)
	b.Register(keys.NotificationPulseDuration, validate.AnyInteger)
	b.Register(keys.DefaultNotificationTorch, validate.OrAbsent(validate.NumericPair("1", 1)))

	// Battery light.
	b.Register(keys.BatteryLightEnabled, validate.Boolean)
	b.Register(keys.BatteryLightAllowOnDND, validate.Boolean)
	b.Register(keys.BatteryLightLowBlinking, validate.Boolean)
	b.Register(keys.BatteryLightLowColor, validate.AnyString)
	b.Register(keys.BatteryLightMediumColor, validate.AnyString)
	b.Register(keys.BatteryLightFullColor, validate.AnyString)
	b.Register(keys.BatteryLightReallyFullColor, validate.AnyString)

	// Torch and flashlight.
	b.Register(keys.FlashlightOnCall, validate.InclusiveIntegerRange(0, 4))
	b.Register(keys.FlashlightOnCallIgnoreDND, validate.Boolean)
	b.Register(keys.FlashlightOnCallRate, validate.InclusiveIntegerRange(1, 5))
	b.Register(keys.TorchPowerButtonGesture, validate.InclusiveIntegerRange(0, 2))

	// Gaming mode.
	b.Register(keys.GamingModeHeadsUp, validate.Boolean)
	b.Register(keys.GamingModeZen, validate.Boolean)
	b.Register(keys.GamingModeRinger, validate.InclusiveIntegerRange(0, 2))
	b.Register(keys.GamingModeNavbar, validate.Boolean)
	b.Register(keys.GamingModeHWButtons, validate.Boolean)
	b.Register(keys.GamingModeNightLight, validate.Boolean)
	b.Register(keys.GamingModeBatterySchedule, validate.Boolean)
	b.Register(keys.GamingModeBrightnessEnabled, validate.Boolean)
	b.Register(keys.GamingModeBrightness, validate.InclusiveIntegerRange(0, 100))
	b.Register(keys.GamingModeMediaEnabled, validate.Boolean)
	b.Register(keys.GamingModeMedia, validate.InclusiveIntegerRange(0, 100))
	b.Register(keys.GamingModeScreenOff, validate.Boolean)

	// Miscellaneous.
	b.Register(keys.OmniAdvancedReboot, validate.Boolean)

	return b.Build()
}
