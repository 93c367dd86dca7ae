package hci

import (
	"time"

	"github.com/halcyon-bt/bthost/hci/evt"
)

const (
	// opcodeNone is the NOP opcode; responses carrying it only return
	// command credits [Vol 2, Part E, 4.4].
	opcodeNone = 0x0000

	opReset = 0x0C03
)

const (
	defaultCommandTimeout = 2 * time.Second
	defaultAclQueueDepth  = 3
)

const statusSuccess = 0x00

// Event codes routed to the caller of AclConnectionInterface.
var aclConnectionEvents = []int{
	evt.ConnectionCompleteCode,
	evt.ConnectionRequestCode,
	evt.DisconnectionCompleteCode,
	evt.AuthenticationCompleteCode,
	evt.ReadRemoteSupportedFeaturesCompleteCode,
	evt.ReadRemoteVersionInformationCompleteCode,
	evt.QoSSetupCompleteCode,
	evt.FlushOccurredCode,
	evt.RoleChangeCode,
	evt.ModeChangeCode,
	evt.ReadClockOffsetCompleteCode,
	evt.ConnectionPacketTypeChangedCode,
}

// Subevent codes routed to the caller of LeAclConnectionInterface.
var leConnectionEvents = []int{
	evt.LEConnectionCompleteSubCode,
	evt.LEConnectionUpdateCompleteSubCode,
	evt.LEReadRemoteFeaturesCompleteSubCode,
	evt.LERemoteConnectionParameterRequestSubCode,
	evt.LEDataLengthChangeSubCode,
	evt.LEEnhancedConnectionCompleteSubCode,
	evt.LEPHYUpdateCompleteSubCode,
	evt.LEChannelSelectionAlgorithmSubCode,
}

// Event codes routed to the caller of SecurityInterface.
var securityEvents = []int{
	evt.EncryptionChangeCode,
	evt.ChangeConnectionLinkKeyCompleteCode,
	evt.MasterLinkKeyCompleteCode,
	evt.ReturnLinkKeysCode,
	evt.PINCodeRequestCode,
	evt.LinkKeyRequestCode,
	evt.LinkKeyNotificationCode,
	evt.EncryptionKeyRefreshCompleteCode,
	evt.IOCapabilityRequestCode,
	evt.IOCapabilityResponseCode,
	evt.UserConfirmationRequestCode,
	evt.UserPasskeyRequestCode,
	evt.RemoteOOBDataRequestCode,
	evt.SimplePairingCompleteCode,
	evt.UserPasskeyNotificationCode,
	evt.KeypressNotificationCode,
	evt.RemoteHostSupportedFeaturesNotificationCode,
}

// Subevent codes routed to the caller of LeSecurityInterface.
var leSecurityEvents = []int{
	evt.LELongTermKeyRequestSubCode,
	evt.LEReadLocalP256PublicKeyCompleteSubCode,
	evt.LEGenerateDHKeyCompleteSubCode,
}

// Subevent codes routed to the caller of LeAdvertisingInterface.
var leAdvertisingEvents = []int{
	evt.LEScanRequestReceivedSubCode,
	evt.LEAdvertisingSetTerminatedSubCode,
}

// Subevent codes routed to the caller of LeScanningInterface.
var leScanningEvents = []int{
	evt.LEAdvertisingReportSubCode,
	evt.LEDirectedAdvertisingReportSubCode,
	evt.LEExtendedAdvertisingReportSubCode,
	evt.LEPeriodicAdvertisingSyncEstablishedSubCode,
	evt.LEPeriodicAdvertisingReportSubCode,
	evt.LEPeriodicAdvertisingSyncLostSubCode,
	evt.LEScanTimeoutSubCode,
}
