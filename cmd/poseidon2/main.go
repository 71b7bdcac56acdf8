// Demo binary for the Poseidon2 Mersenne31 sponge hash.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anhelinakruk/poseidon2-m31/field"
	"github.com/anhelinakruk/poseidon2-m31/sponge"
)

var rootCmd = &cobra.Command{
	Use:   "poseidon2",
	Short: "Poseidon2 sponge hashing over the Mersenne31 field",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo()
	},
}

var bytesCmd = &cobra.Command{
	Use:   "bytes <message>",
	Short: "Hash a byte string via SHAKE128 expansion into one rate block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash := sponge.HashBytes([]byte(args[0]))
		fmt.Printf("Input: %q\n", args[0])
		fmt.Printf("Hash:  %d\n", field.Uint32(hash))
	},
}

func init() {
	rootCmd.AddCommand(bytesCmd)
}

func rateValues(state [sponge.Width]field.Element) []uint32 {
	vals := make([]uint32, sponge.Rate)
	for i := 0; i < sponge.Rate; i++ {
		vals[i] = field.Uint32(state[i])
	}
	return vals
}

func capacityValues(state [sponge.Width]field.Element) []uint32 {
	vals := make([]uint32, sponge.Width-sponge.Rate)
	for i := sponge.Rate; i < sponge.Width; i++ {
		vals[i-sponge.Rate] = field.Uint32(state[i])
	}
	return vals
}

func runDemo() {
	fmt.Println("=== Poseidon2 Hash Examples ===")
	fmt.Println()

	// Example 1: auto-padding of a partial block
	fmt.Println("Example 1: Auto-padding")
	s := sponge.New()
	s.Absorb(field.FromUint32Unchecked(1))
	s.Absorb(field.FromUint32Unchecked(2))
	s.Absorb(field.FromUint32Unchecked(3))
	fmt.Println("Input:  [1, 2, 3]")
	fmt.Println("Padded: [1, 2, 3, 0, 0, 0, 0, 0]")
	fmt.Printf("Hash:   %d\n\n", field.Uint32(s.Finalize()))

	// Example 2: one full rate block, circuit-compatible
	fmt.Println("Example 2: Full message (8 elements)")
	var message [sponge.Rate]field.Element
	for i := range message {
		message[i] = field.FromUint32Unchecked(uint32(i))
	}
	outputs := sponge.HashMessages([][sponge.Rate]field.Element{message})
	fmt.Println("Input:    [0, 1, 2, 3, 4, 5, 6, 7]")
	fmt.Printf("Hash:     %d\n", field.Uint32(outputs[0][0]))
	fmt.Printf("Expected: 334078718\n\n")

	// Example 3: vertical chaining across three messages
	fmt.Println("Example 3: Vertical chaining (3 messages)")
	messages := make([][sponge.Rate]field.Element, 3)
	for m := range messages {
		for i := 0; i < sponge.Rate; i++ {
			messages[m][i] = field.FromUint32Unchecked(uint32(m*sponge.Rate + i))
		}
	}
	outputs = sponge.HashMessages(messages)
	for i, output := range outputs {
		fmt.Printf("Message %d: hash = %d\n", i, field.Uint32(output[0]))
	}
	fmt.Println()

	// Example 4: full state output
	fmt.Println("Example 4: Full state (16 elements)")
	fmt.Printf("Rate (0-7):      %v\n", rateValues(outputs[0]))
	fmt.Printf("Capacity (8-15): %v\n", capacityValues(outputs[0]))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
