package huffman

// Reference vectors for the encoder and decoder tests.

const paragraph = "In general, a data compression algorithm reduces the amount of m" +
	"emory (bits) required to represent a message (data). The compres" +
	"sed data, in turn, helps to reduce the transmission time from a " +
	"sender to receiver. The sender encodes the data, and the receive" +
	"r decodes the encoded data. As part of this problem, you have to" +
	" implement the logic for both encoding and decoding."

const paragraphBits = "0001101000101111010101000010100011001011010110001111110101111010" +
	"0010111000101111101000111101111101100110100001100110000011100101" +
	"1101011010111010100111011000001100110101011111101101000100101100" +
	"1010010000111111100110101001110101101110111101100001011001110111" +
	"1101111111101111001011101110110110111011110001010101101000001100" +
	"0011000101111101101000001101110110000000110100010011111000111111" +
	"0110100110110011010000111000010110011101011111011110000110011010" +
	"1101010100111000101001000101110001010001011000100111000110011010" +
	"1001111010001111011111011001101000011001110001001110100010111000" +
	"1010001111110000001011111001011000110001000011111111010100101011" +
	"1101100011111110001111110110100010010110010100100111110011010100" +
	"1111100011001010010001110111000000110011000001110010111110000001" +
	"0111100111110111101100111101111110101111001110000100100100011011" +
	"1110001111110110100101001000000101101110001100001001110001100110" +
	"1010011100111000010010010001101111000010101000111010010000111111" +
	"1001101010011101000101110001010001111110101001001001111100110101" +
	"0011101101001010010000001011011100011011101001001010001110100100" +
	"0011111110011010100111100001010100011101001000100111010001011100" +
	"0101000100111110111000011111110110010101101100111011111011111111" +
	"1001101000000011111110110011001111011010101011100101110001111111" +
	"1011101011110110011111010010110110111001111100011111100001011111" +
	"0110101011100101111000010110011111001101010011110101101111010100" +
	"0001010011111011110111011011110110100111110011010111100001010100" +
	"0111010000000010101010111010100100100111010010010100011101000000" +
	"0010101010000100"
