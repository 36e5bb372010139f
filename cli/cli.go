// Package cli provides the command line interface for the base58check
// tool: raw codec commands plus wallet management on the keystore.
package cli

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"syscall"

	"github.com/mkohlhaas/base58check/b58error"
	"github.com/mkohlhaas/base58check/base58"
	"github.com/mkohlhaas/base58check/base58check"
	"github.com/mkohlhaas/base58check/keystore"
	"github.com/mkohlhaas/base58check/wallet"
	death "github.com/vrecan/death/v3"
)

const keystoreDir = "./tmp/keystore"

type CommandLine struct{}

func (cli *CommandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println(" encode -data HEX - base58-encode raw bytes given as hex")
	fmt.Println(" decode -input STRING - decode a base58 string, print hex")
	fmt.Println(" checkencode -data HEX -version N - base58check-encode content with a version byte")
	fmt.Println(" checkdecode -address ADDRESS - verify and decode an address, print content as hex")
	fmt.Println(" validate -address ADDRESS - check an address checksum")
	fmt.Println(" createwallet - Creates a new wallet in the keystore")
	fmt.Println(" listaddresses - Lists the addresses in the keystore")
	fmt.Println(" An optional -alphabet CHARSET (58 characters) switches the character set.")
}

func (cli *CommandLine) validateArgs() {
	if len(os.Args) < 2 {
		cli.printUsage()
		runtime.Goexit()
	}
}

func alphabetFrom(charset string) *base58.Alphabet {
	if charset == "" {
		return base58.BTCAlphabet
	}
	alpha, err := base58.NewAlphabet(charset)
	b58error.Handle(err)
	return alpha
}

func (cli *CommandLine) encode(data, charset string) {
	raw, err := hex.DecodeString(data)
	b58error.Handle(err)
	fmt.Printf("%s\n", base58.EncodeAlphabet(raw, alphabetFrom(charset)))
}

func (cli *CommandLine) decode(input, charset string) {
	raw, err := base58.DecodeStringAlphabet(input, alphabetFrom(charset))
	b58error.Handle(err)
	fmt.Printf("%x\n", raw)
}

func (cli *CommandLine) checkEncode(data string, version int, charset string) {
	content, err := hex.DecodeString(data)
	b58error.Handle(err)
	address, err := base58check.EncodeAlphabet(content, version, alphabetFrom(charset))
	b58error.Handle(err)
	fmt.Printf("%s\n", address)
}

func (cli *CommandLine) checkDecode(address, charset string) {
	content, err := base58check.DecodeStringAlphabet(address, alphabetFrom(charset))
	b58error.Handle(err)
	fmt.Printf("%x\n", content)
}

func (cli *CommandLine) validate(address, charset string) {
	ok, err := base58check.IsValidAlphabet([]byte(address), alphabetFrom(charset))
	b58error.Handle(err)
	fmt.Println(ok)
}

func (cli *CommandLine) createWallet() {
	store, err := keystore.Open(keystoreDir)
	b58error.Handle(err)
	go closeStore(store)
	defer store.Close()
	address, err := store.Put(wallet.MakeWallet())
	b58error.Handle(err)
	fmt.Printf("New address is: %s\n", address)
}

func (cli *CommandLine) listAddresses() {
	store, err := keystore.Open(keystoreDir)
	b58error.Handle(err)
	go closeStore(store)
	defer store.Close()
	addresses, err := store.Addresses()
	b58error.Handle(err)
	for _, address := range addresses {
		fmt.Println(address)
	}
}

// Runs in a goroutine and waits for Ctrl-C to close the keystore.
func closeStore(store *keystore.Store) {
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM)
	d.WaitForDeathWithFunc(func() {
		defer os.Exit(0)
		defer runtime.Goexit()
		store.Close()
	})
}

func (cli *CommandLine) Run() {
	cli.validateArgs()
	encodeCmd := flag.NewFlagSet("encode", flag.ExitOnError)
	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)
	checkEncodeCmd := flag.NewFlagSet("checkencode", flag.ExitOnError)
	checkDecodeCmd := flag.NewFlagSet("checkdecode", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	createWalletCmd := flag.NewFlagSet("createwallet", flag.ExitOnError)
	listAddressesCmd := flag.NewFlagSet("listaddresses", flag.ExitOnError)
	encodeData := encodeCmd.String("data", "", "Raw bytes to encode, as hex")
	encodeAlphabet := encodeCmd.String("alphabet", "", "Custom 58-character set")
	decodeInput := decodeCmd.String("input", "", "Base58 string to decode")
	decodeAlphabet := decodeCmd.String("alphabet", "", "Custom 58-character set")
	checkEncodeData := checkEncodeCmd.String("data", "", "Content bytes to encode, as hex")
	checkEncodeVersion := checkEncodeCmd.Int("version", 0, "Version byte (0-255)")
	checkEncodeAlphabet := checkEncodeCmd.String("alphabet", "", "Custom 58-character set")
	checkDecodeAddress := checkDecodeCmd.String("address", "", "Address to decode")
	checkDecodeAlphabet := checkDecodeCmd.String("alphabet", "", "Custom 58-character set")
	validateAddress := validateCmd.String("address", "", "Address to validate")
	validateAlphabet := validateCmd.String("alphabet", "", "Custom 58-character set")
	switch os.Args[1] {
	case "encode":
		err := encodeCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "decode":
		err := decodeCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "checkencode":
		err := checkEncodeCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "checkdecode":
		err := checkDecodeCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "validate":
		err := validateCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "createwallet":
		err := createWalletCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	case "listaddresses":
		err := listAddressesCmd.Parse(os.Args[2:])
		if err != nil {
			log.Panic(err)
		}
	default:
		cli.printUsage()
		runtime.Goexit()
	}
	if encodeCmd.Parsed() {
		if *encodeData == "" {
			encodeCmd.Usage()
			runtime.Goexit()
		}
		cli.encode(*encodeData, *encodeAlphabet)
	}
	if decodeCmd.Parsed() {
		if *decodeInput == "" {
			decodeCmd.Usage()
			runtime.Goexit()
		}
		cli.decode(*decodeInput, *decodeAlphabet)
	}
	if checkEncodeCmd.Parsed() {
		if *checkEncodeData == "" {
			checkEncodeCmd.Usage()
			runtime.Goexit()
		}
		cli.checkEncode(*checkEncodeData, *checkEncodeVersion, *checkEncodeAlphabet)
	}
	if checkDecodeCmd.Parsed() {
		if *checkDecodeAddress == "" {
			checkDecodeCmd.Usage()
			runtime.Goexit()
		}
		cli.checkDecode(*checkDecodeAddress, *checkDecodeAlphabet)
	}
	if validateCmd.Parsed() {
		if *validateAddress == "" {
			validateCmd.Usage()
			runtime.Goexit()
		}
		cli.validate(*validateAddress, *validateAlphabet)
	}
	if createWalletCmd.Parsed() {
		cli.createWallet()
	}
	if listAddressesCmd.Parsed() {
		cli.listAddresses()
	}
}
