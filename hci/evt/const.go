package evt

// Event codes [Vol 2, Part E, 7.7].
const (
	ConnectionCompleteCode                      = 0x03
	ConnectionRequestCode                       = 0x04
	DisconnectionCompleteCode                   = 0x05
	AuthenticationCompleteCode                  = 0x06
	EncryptionChangeCode                        = 0x08
	ChangeConnectionLinkKeyCompleteCode         = 0x09
	MasterLinkKeyCompleteCode                   = 0x0A
	ReadRemoteSupportedFeaturesCompleteCode     = 0x0B
	ReadRemoteVersionInformationCompleteCode    = 0x0C
	QoSSetupCompleteCode                        = 0x0D
	CommandCompleteCode                         = 0x0E
	CommandStatusCode                           = 0x0F
	HardwareErrorCode                           = 0x10
	FlushOccurredCode                           = 0x11
	RoleChangeCode                              = 0x12
	NumberOfCompletedPacketsCode                = 0x13
	ModeChangeCode                              = 0x14
	ReturnLinkKeysCode                          = 0x15
	PINCodeRequestCode                          = 0x16
	LinkKeyRequestCode                          = 0x17
	LinkKeyNotificationCode                     = 0x18
	MaxSlotsChangeCode                          = 0x1B
	ReadClockOffsetCompleteCode                 = 0x1C
	ConnectionPacketTypeChangedCode             = 0x1D
	PageScanRepetitionModeChangeCode            = 0x20
	EncryptionKeyRefreshCompleteCode            = 0x30
	IOCapabilityRequestCode                     = 0x31
	IOCapabilityResponseCode                    = 0x32
	UserConfirmationRequestCode                 = 0x33
	UserPasskeyRequestCode                      = 0x34
	RemoteOOBDataRequestCode                    = 0x35
	SimplePairingCompleteCode                   = 0x36
	UserPasskeyNotificationCode                 = 0x3B
	KeypressNotificationCode                    = 0x3C
	RemoteHostSupportedFeaturesNotificationCode = 0x3D
	LEMetaCode                                  = 0x3E
	VendorSpecificCode                          = 0xFF
)

// LE meta subevent codes [Vol 2, Part E, 7.7.65].
const (
	LEConnectionCompleteSubCode                 = 0x01
	LEAdvertisingReportSubCode                  = 0x02
	LEConnectionUpdateCompleteSubCode           = 0x03
	LEReadRemoteFeaturesCompleteSubCode         = 0x04
	LELongTermKeyRequestSubCode                 = 0x05
	LERemoteConnectionParameterRequestSubCode   = 0x06
	LEDataLengthChangeSubCode                   = 0x07
	LEReadLocalP256PublicKeyCompleteSubCode     = 0x08
	LEGenerateDHKeyCompleteSubCode              = 0x09
	LEEnhancedConnectionCompleteSubCode         = 0x0A
	LEDirectedAdvertisingReportSubCode          = 0x0B
	LEPHYUpdateCompleteSubCode                  = 0x0C
	LEExtendedAdvertisingReportSubCode          = 0x0D
	LEPeriodicAdvertisingSyncEstablishedSubCode = 0x0E
	LEPeriodicAdvertisingReportSubCode          = 0x0F
	LEPeriodicAdvertisingSyncLostSubCode        = 0x10
	LEScanTimeoutSubCode                        = 0x11
	LEAdvertisingSetTerminatedSubCode           = 0x12
	LEScanRequestReceivedSubCode                = 0x13
	LEChannelSelectionAlgorithmSubCode          = 0x14
)
