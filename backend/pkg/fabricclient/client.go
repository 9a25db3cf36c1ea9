package fabricclient

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
)

// Options locate the network and the identity the client acts as.
type Options struct {
	ConfigPath   string
	WalletPath   string
	Identity     string
	ChannelName  string
	ChaincodeID  string
	ContractName string
	MSPID        string
	CertPath     string
	KeyPath      string
}

type Client struct {
	gw            *gateway.Gateway
	network       *gateway.Network
	contract      *gateway.Contract
	registrations []fab.Registration
}

// NewClient connects to the gateway, first importing the x509 identity into
// the wallet if it is not there yet.
func NewClient(opts Options) (*Client, error) {
	wallet, err := gateway.NewFileSystemWallet(opts.WalletPath)
	if err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	if !wallet.Exists(opts.Identity) {
		err = populateWallet(wallet, opts)
		if err != nil {
			return nil, fmt.Errorf("populate wallet: %w", err)
		}
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromFile(filepath.Clean(opts.ConfigPath))),
		gateway.WithIdentity(wallet, opts.Identity),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to gateway: %w", err)
	}

	network, err := gw.GetNetwork(opts.ChannelName)
	if err != nil {
		gw.Close()
		return nil, fmt.Errorf("get network %s: %w", opts.ChannelName, err)
	}

	var contract *gateway.Contract
	if opts.ContractName != "" {
		contract = network.GetContractWithName(opts.ChaincodeID, opts.ContractName)
	} else {
		contract = network.GetContract(opts.ChaincodeID)
	}

	return &Client{
		gw:       gw,
		network:  network,
		contract: contract,
	}, nil
}

// SubmitTransaction endorses, orders and commits a transaction and returns
// the chaincode's response.
func (c *Client) SubmitTransaction(name string, args ...string) ([]byte, error) {
	return c.contract.SubmitTransaction(name, args...)
}

// EvaluateTransaction queries a peer without committing anything.
func (c *Client) EvaluateTransaction(name string, args ...string) ([]byte, error) {
	return c.contract.EvaluateTransaction(name, args...)
}

// RegisterChaincodeEventListener subscribes to chaincode events matching
// eventName. The subscription is released by Close.
func (c *Client) RegisterChaincodeEventListener(eventName string) (<-chan *fab.CCEvent, error) {
	reg, notifier, err := c.contract.RegisterEvent(eventName)
	if err != nil {
		return nil, fmt.Errorf("register event %s: %w", eventName, err)
	}
	c.registrations = append(c.registrations, reg)
	return notifier, nil
}

func (c *Client) Close() {
	for _, reg := range c.registrations {
		c.contract.Unregister(reg)
	}
	c.registrations = nil
	c.gw.Close()
}

func populateWallet(wallet *gateway.Wallet, opts Options) error {
	cert, err := os.ReadFile(filepath.Clean(opts.CertPath))
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(opts.KeyPath))
	if err != nil {
		return err
	}

	identity := gateway.NewX509Identity(opts.MSPID, string(cert), string(key))

	return wallet.Put(opts.Identity, identity)
}
