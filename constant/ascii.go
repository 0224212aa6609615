package constant

// AsciiArtLogo is the banner shown above the root command help.
const AsciiArtLogo = `                 _
 _ __   _____  _| |_ ___ _ __
| '_ \ / _ \ \/ / __/ _ \ '_ \
| | | |  __/>  <| ||  __/ |_) |
|_| |_|\___/_/\_\\__\___| .__/
                        |_|`
