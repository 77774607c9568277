// Command mathcli runs the numeric operations from the command line.
//
// Usage:
//
//	mathcli square 5
//	mathcli power 2 8
//	mathcli factorial 5
//	mathcli fibonacci 10
//	mathcli prime 17
//	mathcli stats 1 2 3 4 5
//	mathcli describe data.csv
//
// A decimal point selects a float for square, power and stats. factorial,
// fibonacci and prime take integers. Operation failures print
// "Error: <message>" and exit 1; malformed command lines exit 2.
package main
