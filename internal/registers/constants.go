// internal/registers/constants.go
package registers

// ViewMarq holding register map.
// These values define the protocol and MUST NOT be configurable.
// All addresses are 0-based protocol addresses.

// ---- COMMAND AREA ----

// CommandBase is the first register of the ASCII command area.
// Chunk N of a message is written at CommandBase + words already sent.
const CommandBase uint16 = 10999

// MaxWordsPerWrite bounds one command write transaction.
const MaxWordsPerWrite = 123

// MaxCommandChars is the longest command string the sign buffer accepts.
const MaxCommandChars = 511

// ---- DECIMAL VARIABLES ----

// DecimalSlots is the number of numeric live variables (addressed 1..32).
const DecimalSlots = 32

// DecimalBase is the register holding the high word of decimal variable 1.
// The low word follows at DecimalBase+1.
const DecimalBase uint16 = 99

// DecimalRegisters is the number of registers per decimal variable.
const DecimalRegisters = 2

// ---- STRING VARIABLES ----

// StringSlots is the number of string live variables (addressed 1..16).
const StringSlots = 16

// StringBase is the first register of string variable 1.
const StringBase uint16 = 199

// StringRegisters is the fixed register footprint of one string variable.
const StringRegisters = 50

// StringMaxChars is the longest text a string variable can hold.
const StringMaxChars = 100

// ---- MODBUS ----

// DefaultPort is the Modbus TCP port used when an endpoint omits one.
const DefaultPort = "502"
