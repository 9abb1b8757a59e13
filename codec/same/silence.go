/*
NAME
  silence.go

DESCRIPTION
  silence.go implements the silence generator used between bursts: it
  always emits a zero sample, per spec.md SS4.2's sibling component.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

// silenceSample is the one value the silence generator ever produces.
const silenceSample int16 = 0
