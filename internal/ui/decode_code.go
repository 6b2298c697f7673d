package ui

import (
	"fmt"

	"github.com/forest-guardian/landsat-guardian-poc/internal/mask"
	"github.com/forest-guardian/landsat-guardian-poc/internal/qa"
)

// DecodeCode handles the UI for decoding a single QA pixel code
func DecodeCode() {
	code, err := ReadInt(fmt.Sprintf("Enter the QA pixel code (%d-%d): ", qa.NoDataCode, qa.MaxCode), qa.NoDataCode, qa.MaxCode)
	if err != nil {
		PrintError(err.Error())
		return
	}

	bits, err := qa.Decode(code)
	if err != nil {
		PrintError(err.Error())
		return
	}

	flags := qa.Interpret(bits)
	if flags.NoData {
		PrintWarning("This is the NoData marker. It carries no flags and is always discarded.")
		return
	}

	fmt.Printf("\n%sFlags for code %d:%s\n", ColorGreen, code, ColorReset)
	printFlag("fill", flags.Fill)
	printFlag("clear", flags.Clear)
	printFlag("water", flags.Water)
	printFlag("cloud shadow", flags.CloudShadow)
	printFlag("snow", flags.Snow)
	printFlag("cloud", flags.Cloud)
	fmt.Printf("%s- cloud confidence: %s%s\n", ColorGreen, flags.CloudConfidence, ColorReset)
	fmt.Printf("%s- cirrus confidence: %s%s\n", ColorGreen, flags.CirrusConfidence, ColorReset)
	printFlag("terrain occluded", flags.TerrainOccluded)

	table := mask.BuildLookupTable(mask.DefaultKeepPredicate)
	if table.Lookup(code) == mask.Keep {
		PrintSuccess("A clear land mask keeps this code.")
	} else {
		PrintWarning("A clear land mask discards this code.")
	}
}

func printFlag(name string, set bool) {
	value := "no"
	if set {
		value = "yes"
	}
	fmt.Printf("%s- %s: %s%s\n", ColorGreen, name, value, ColorReset)
}
