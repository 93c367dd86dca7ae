package h4

import (
	"io/ioutil"

	"github.com/chmorgan/go-serial2/serial"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// PortConfig is the on-disk description of a serial port, loadable from a
// JSON file so tools don't hard-code UART settings.
type PortConfig struct {
	Port              string `json:"port"`
	BaudRate          uint   `json:"baud_rate"`
	DataBits          uint   `json:"data_bits"`
	StopBits          uint   `json:"stop_bits"`
	RTSCTSFlowControl bool   `json:"rtscts_flow_control"`
}

// LoadPortConfig reads a JSON port description and fills in defaults for
// omitted fields (115200 8N1, no flow control).
func LoadPortConfig(filename string) (serial.OpenOptions, error) {
	var cfg PortConfig

	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return serial.OpenOptions{}, errors.Wrap(err, "can't read port config")
	}

	if err := jsoniter.Unmarshal(b, &cfg); err != nil {
		return serial.OpenOptions{}, errors.Wrap(err, "can't parse port config")
	}

	if cfg.Port == "" {
		return serial.OpenOptions{}, errors.New("port config missing \"port\"")
	}
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	if cfg.DataBits == 0 {
		cfg.DataBits = 8
	}
	if cfg.StopBits == 0 {
		cfg.StopBits = 1
	}

	return serial.OpenOptions{
		PortName:          cfg.Port,
		BaudRate:          cfg.BaudRate,
		DataBits:          cfg.DataBits,
		StopBits:          cfg.StopBits,
		ParityMode:        serial.PARITY_NONE,
		RTSCTSFlowControl: cfg.RTSCTSFlowControl,
	}, nil
}
